// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticketdesk/internal/admin"
	"ticketdesk/internal/bookings"
	"ticketdesk/internal/events"
	"ticketdesk/internal/gallery"
	"ticketdesk/internal/images"
	"ticketdesk/internal/notifications"
	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/middleware"
	"ticketdesk/internal/tickets"
	"ticketdesk/internal/upstream"
	"ticketdesk/pkg/cache"
	"ticketdesk/pkg/clock"
	"ticketdesk/pkg/logger"
	"ticketdesk/pkg/scheduler"
)

// Router holds all route dependencies
type Router struct {
	config       *config.Config
	client       *upstream.Client
	cacheService cache.Service
	sessions     admin.SessionStore
	clk          clock.Clock
	log          *logger.Logger

	ticketRepo tickets.Repository
}

// NewRouter creates a new router instance. cacheService may be nil
// when Redis is unavailable; snapshots then bypass the cache.
func NewRouter(cfg *config.Config, client *upstream.Client, cacheService cache.Service, sessions admin.SessionStore, clk clock.Clock, log *logger.Logger) *Router {
	return &Router{
		config:       cfg,
		client:       client,
		cacheService: cacheService,
		sessions:     sessions,
		clk:          clk,
		log:          log,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	auth := middleware.NewSessionAuth(r.sessions, r.log)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAdminRoutes(api, auth)

		// Ticket routes come first: the bookings service validates
		// against the ticket repository built here.
		r.setupTicketRoutes(api, auth)

		r.setupEventRoutes(api, auth)
		r.setupBookingRoutes(api, auth)
		r.setupNotificationRoutes(api, auth)
		r.setupGalleryRoutes(api, auth)
		r.setupImageRoutes(api, auth)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		checks := gin.H{"upstream": "configured"}

		if r.cacheService != nil {
			if err := r.cacheService.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":    "degraded",
					"error":     err.Error(),
					"timestamp": time.Now(),
					"service":   "ticketdesk-gateway",
				})
				return
			}
			checks["redis"] = "ok"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"checks":    checks,
			"timestamp": time.Now(),
			"service":   "ticketdesk-gateway",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupAdminRoutes configures login, logout and profile routes
func (r *Router) setupAdminRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	adminRepo := admin.NewRepository(r.client)
	adminService := admin.NewService(adminRepo, r.sessions, r.clk, r.config.Session.TTL, r.log)
	adminController := admin.NewController(adminService)

	admin.SetupAdminRoutes(rg, adminController, auth)
}

// setupTicketRoutes configures ticket routes and keeps the repository
// for booking validation
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	ticketRepo := tickets.NewRepository(r.client)
	ticketService := tickets.NewService(ticketRepo, r.config.Redis.SnapshotTTL)
	if r.cacheService != nil {
		ticketService.SetCacheService(r.cacheService)
	}
	ticketController := tickets.NewController(ticketService)

	r.ticketRepo = ticketRepo

	tickets.SetupTicketRoutes(rg, ticketController, auth)
}

// setupEventRoutes configures event management routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	eventRepo := events.NewRepository(r.client)
	eventService := events.NewService(eventRepo, r.clk, r.config.Redis.SnapshotTTL)
	if r.cacheService != nil {
		eventService.SetCacheService(r.cacheService)
	}
	eventController := events.NewController(eventService, r.clk, scheduler.New())

	events.SetupEventRoutes(rg, eventController, auth)
}

// setupBookingRoutes configures booking routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	bookingRepo := bookings.NewRepository(r.client)
	bookingService := bookings.NewService(bookingRepo, r.ticketRepo, r.log)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController, auth)
}

// setupNotificationRoutes configures banner routes
func (r *Router) setupNotificationRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	bannerRepo := notifications.NewRepository(r.client)
	bannerService := notifications.NewService(bannerRepo, r.config.Redis.SnapshotTTL)
	if r.cacheService != nil {
		bannerService.SetCacheService(r.cacheService)
	}
	bannerController := notifications.NewController(bannerService)

	notifications.SetupNotificationRoutes(rg, bannerController, auth)
}

// setupGalleryRoutes configures gallery routes
func (r *Router) setupGalleryRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	galleryRepo := gallery.NewRepository(r.client)
	galleryService := gallery.NewService(galleryRepo, r.config.Redis.SnapshotTTL)
	if r.cacheService != nil {
		galleryService.SetCacheService(r.cacheService)
	}
	galleryController := gallery.NewController(galleryService)

	gallery.SetupGalleryRoutes(rg, galleryController, auth)
}

// setupImageRoutes configures the image hosting proxy
func (r *Router) setupImageRoutes(rg *gin.RouterGroup, auth *middleware.SessionAuth) {
	imageService := images.NewService(r.client)
	imageController := images.NewController(imageService)

	images.SetupImageRoutes(rg, imageController, auth)
}
