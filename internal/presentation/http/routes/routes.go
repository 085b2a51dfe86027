package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/autocare-api/internal/config"
	"github.com/sangkips/autocare-api/internal/presentation/http/handler"
	"github.com/sangkips/autocare-api/internal/presentation/http/middleware"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Analytics *handler.AnalyticsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	Logger      *zap.Logger
	RateLimiter *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		analytics := v1.Group("/analytics")
		if deps.RateLimiter != nil {
			analytics.Use(deps.RateLimiter.Middleware())
		}
		analytics.GET("/overview", h.Analytics.GetOverview)
	}

	return router
}
