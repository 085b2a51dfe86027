package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/autocare-api/internal/application/service"
	"github.com/sangkips/autocare-api/internal/config"
	"github.com/sangkips/autocare-api/internal/infrastructure/cache"
	"github.com/sangkips/autocare-api/internal/infrastructure/database"
	"github.com/sangkips/autocare-api/internal/infrastructure/repository"
	"github.com/sangkips/autocare-api/internal/presentation/http/handler"
	"github.com/sangkips/autocare-api/internal/presentation/http/middleware"
	"github.com/sangkips/autocare-api/internal/presentation/http/routes"
	"github.com/sangkips/autocare-api/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logg, err := logger.New(cfg.App.Env, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Env, logg)
	if err != nil {
		logg.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db, logg); err != nil {
			logg.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	overviewCache, err := newOverviewCache(cfg, logg)
	if err != nil {
		logg.Fatal("failed to initialize analytics cache", zap.Error(err))
	}

	// Initialize repositories and services
	analyticsRepo := repository.NewAnalyticsRepository(db)
	analyticsService := service.NewAnalyticsService(analyticsRepo, overviewCache, logg, service.AnalyticsConfig{
		CacheTTL:       cfg.Analytics.CacheTTL,
		CoalesceMisses: cfg.Analytics.CoalesceMisses,
		SlowThreshold:  cfg.Analytics.SlowThreshold,
	})

	rateLimiter := middleware.NewClientRateLimiter(rateLimiterConfig(cfg.RateLimit))
	stop := make(chan struct{})
	go rateLimiter.Run(stop)

	handlers := &routes.Handlers{
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:         cfg,
		Logger:      logg,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("starting server",
			zap.String("service", cfg.App.Name),
			zap.String("port", port),
			zap.String("env", cfg.App.Env),
			zap.String("cache_driver", cfg.Analytics.CacheDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logg.Info("server exited")
}

func newOverviewCache(cfg *config.Config, logg *zap.Logger) (service.PayloadCache, error) {
	switch cfg.Analytics.CacheDriver {
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, err
		}
		logg.Info("analytics cache using redis")
		return cache.NewRedisCache(client, cfg.Analytics.CachePrefix), nil
	default:
		return cache.NewMemoryCache(time.Now), nil
	}
}

func rateLimiterConfig(rl config.RateLimitConfig) middleware.RateLimiterConfig {
	rlCfg := middleware.DefaultRateLimiterConfig()
	if rl.Requests > 0 && rl.Duration > 0 {
		rlCfg.RequestsPerSecond = float64(rl.Requests) / float64(rl.Duration)
		rlCfg.BurstSize = rl.Requests
	}
	return rlCfg
}
