package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ticketdesk/api/routes"
	"ticketdesk/internal/admin"
	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/shared/utils/format"
	"ticketdesk/internal/shared/validation"
	"ticketdesk/internal/upstream"
	"ticketdesk/pkg/cache"
	"ticketdesk/pkg/clock"
	"ticketdesk/pkg/logger"
	"ticketdesk/pkg/ratelimit"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Display formatting follows configuration
	format.SetCurrency(cfg.Display.CurrencyCode)
	format.SetLayouts(cfg.Display.DateFormat, cfg.Display.DateTimeFormat)

	// Custom request validators
	validation.Register()

	clk := clock.NewSystem()

	// Connect Redis. The gateway stays up without it: snapshots skip the
	// cache and sessions fall back to process memory.
	var cacheService cache.Service
	var sessions admin.SessionStore
	var rateLimiter *ratelimit.RateLimiter

	redisClient, err := cache.Connect(cache.Config{
		Address:  cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Redis unavailable, using in-memory sessions and no snapshot cache",
			slog.Any("error", err))
		sessions = admin.NewMemorySessionStore(clk)
	} else {
		defer redisClient.Close()
		cacheService = cache.NewService(redisClient)
		sessions = admin.NewRedisSessionStore(cacheService)

		if cfg.RateLimit.Enabled {
			rateLimiter = ratelimit.NewRateLimiter(redisClient, &ratelimit.Config{
				Enabled:         cfg.RateLimit.Enabled,
				WindowDuration:  cfg.RateLimit.WindowDuration,
				DefaultRequests: cfg.RateLimit.DefaultRequests,
				PublicRequests:  cfg.RateLimit.PublicRequests,
				AuthRequests:    cfg.RateLimit.AuthRequests,
				BookingRequests: cfg.RateLimit.BookingRequests,
				AdminRequests:   cfg.RateLimit.AdminRequests,
				HealthRequests:  cfg.RateLimit.HealthRequests,
				WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
			})
			appLogger.Info("Rate limiter initialized",
				slog.Duration("window", cfg.RateLimit.WindowDuration),
				slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
			)
		}
	}

	// Upstream ticketing API client
	client := upstream.New(cfg.Upstream, appLogger)

	// Setup router
	router := setupRouter(cfg, client, cacheService, sessions, clk, rateLimiter, appLogger)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("upstream", cfg.Upstream.BaseURL),
			slog.String("version", Version),
			slog.Bool("redis_cache", cacheService != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, client *upstream.Client, cacheService cache.Service, sessions admin.SessionStore, clk clock.Clock, rateLimiter *ratelimit.RateLimiter, appLogger *logger.Logger) *gin.Engine {
	engine := gin.New()

	// Built-in middleware: request ids, logs, panic recovery
	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, client, cacheService, sessions, clk, appLogger)
	appRouter.SetupRoutes(engine)

	return engine
}
