package router

import (
	"log/slog"
	"net/http"
	"time"

	"explore-india/internal/admin"
	"explore-india/internal/auth"
	"explore-india/internal/budget"
	"explore-india/internal/destination"
	"explore-india/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps are the wired handlers and settings the router needs.
type Deps struct {
	Destinations *destination.Handler
	Budget       *budget.Handler
	Auth         *auth.Handler
	Admin        *admin.Handler
	Tokens       middleware.TokenValidator

	CORSOrigins []string
	Logger      *slog.Logger
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	if d.Logger != nil {
		r.Use(middleware.RequestLogger(d.Logger))
	}

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── DESTINATIONS ─────────────────────────
	destinations := r.Group("/destinations")
	{
		destinations.GET("", d.Destinations.List)
		destinations.GET("/:id", d.Destinations.Get)
		destinations.POST("/:id/budget", d.Budget.EstimateDestination)
	}

	// ───────────────────────── BUDGET ─────────────────────────
	budgetGroup := r.Group("/budget")
	{
		budgetGroup.POST("/estimate", d.Budget.EstimateInline)
		budgetGroup.POST("/compare", d.Budget.Compare)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	r.POST("/admin/login", d.Auth.Login)

	adminGroup := r.Group("/admin")
	adminGroup.Use(
		middleware.AuthMiddleware(d.Tokens),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		adminGroup.POST("/destinations", d.Admin.Destination)
		adminGroup.PUT("/destinations", d.Admin.Destination)

		adminGroup.POST("/destinations/:id/attractions", d.Admin.Attraction)
		adminGroup.PUT("/destinations/:id/attractions", d.Admin.Attraction)

		adminGroup.POST("/destinations/:id/transport", d.Admin.Transport)
		adminGroup.PUT("/destinations/:id/transport", d.Admin.Transport)

		adminGroup.POST("/destinations/:id/accommodations", d.Admin.Accommodation)
		adminGroup.PUT("/destinations/:id/accommodations", d.Admin.Accommodation)

		adminGroup.POST("/images", d.Admin.UploadImage)
	}

	return r
}
