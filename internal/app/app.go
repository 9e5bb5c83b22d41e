package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"explore-india/internal/budget"
	"explore-india/internal/config"
	"explore-india/internal/core"
	"explore-india/internal/db"
	"explore-india/internal/destination"
	"explore-india/internal/storage"
)

// NewLogger returns JSON logs in production and text logs elsewhere.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Production() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	opts.Level = slog.LevelDebug
	return slog.New(slog.NewTextHandler(w, opts))
}

// Catalog is an open catalog plus whatever must be released with it.
type Catalog struct {
	core.CatalogReader

	// Postgres is set only for the postgres source.
	Postgres *destination.PostgresRepository

	closers []func()
}

// Close releases the catalog's resources. Later calls do nothing.
func (c *Catalog) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// OpenCatalog builds the catalog selected by CATALOG_SOURCE.
func OpenCatalog(ctx context.Context, cfg config.Config) (*Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogMemory:
		return &Catalog{
			CatalogReader: destination.NewInMemoryRepository(destination.SampleDestinations()...),
		}, nil

	case config.CatalogFile:
		list, err := destination.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		slog.Info("catalog loaded from file", "path", cfg.CatalogFile, "destinations", len(list))
		return &Catalog{CatalogReader: destination.NewInMemoryRepository(list...)}, nil

	case config.CatalogObjectStore:
		r2, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			return nil, err
		}
		list, err := destination.LoadObject(ctx, r2, cfg.CatalogObjectKey)
		if err != nil {
			return nil, err
		}
		slog.Info("catalog loaded from object storage", "key", cfg.CatalogObjectKey, "destinations", len(list))
		return &Catalog{CatalogReader: destination.NewInMemoryRepository(list...)}, nil

	case config.CatalogPostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		repo := destination.NewPostgresRepository(pool)
		return &Catalog{
			CatalogReader: repo,
			Postgres:      repo,
			closers:       []func(){pool.Close},
		}, nil
	}

	return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
}

// NewEstimator applies RATES_FILE overrides on top of the default rates.
func NewEstimator(cfg config.Config) (*budget.Estimator, error) {
	rates, err := config.LoadRates(cfg.RatesFile)
	if err != nil {
		return nil, err
	}
	return budget.NewEstimator(rates)
}
