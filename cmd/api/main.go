package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"explore-india/internal/admin"
	"explore-india/internal/app"
	"explore-india/internal/auth"
	"explore-india/internal/budget"
	"explore-india/internal/config"
	"explore-india/internal/destination"
	"explore-india/internal/router"
	"explore-india/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}
	if err := cfg.RequireServerSecrets(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	logger := app.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	ctx := context.Background()

	// ───────────────────────── ESTIMATOR ─────────────────────────
	estimator, err := app.NewEstimator(cfg)
	if err != nil {
		log.Fatal("❌ Rates invalid: ", err)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var uploader storage.Uploader
	if cfg.R2.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			log.Fatal("❌ R2 init failed: ", err)
		}
		uploader = r2Client
	} else {
		logger.Warn("R2 not configured, admin image uploads disabled")
	}

	// ───────────────────────── AUTH ─────────────────────────
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.Fatal("❌ Token manager: ", err)
	}

	admins := auth.NewInMemoryAdminRepository()
	if cfg.AdminEmail != "" && cfg.AdminPasswordHash != "" {
		admins.Add(auth.Admin{Email: cfg.AdminEmail, PasswordHash: cfg.AdminPasswordHash})
	} else {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	// ───────────────────────── CATALOG ─────────────────────────
	catalog, err := app.OpenCatalog(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Catalog init failed: ", err)
	}
	defer catalog.Close()

	all, err := catalog.ListAll(ctx)
	if err != nil {
		catalog.Close()
		log.Fatal("❌ Catalog read failed: ", err)
	}
	if len(all) == 0 {
		logger.Warn("catalog is empty", "source", cfg.CatalogSource)
	}
	logger.Info("catalog ready", "source", cfg.CatalogSource, "destinations", len(all))

	// ───────────────────────── SERVICES ─────────────────────────
	destinationService := destination.NewService(catalog)
	budgetService := budget.NewService(catalog, estimator)
	authService := auth.NewService(admins, tokens)
	adminService := admin.NewService(catalog, logger)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Destinations: destination.NewHandler(destinationService),
		Budget:       budget.NewHandler(budgetService),
		Auth:         auth.NewHandler(authService),
		Admin:        admin.NewHandler(adminService, uploader),
		Tokens:       tokens,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ───────────────────────── START ─────────────────────────
	go func() {
		logger.Info("🚀 API running", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			catalog.Close()
			log.Fatal("❌ Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
}
