package events

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	// Public routes - anyone can browse events
	publicEvents := router.Group("/events")
	{
		publicEvents.GET("", controller.ListPublic)         // GET /api/v1/events
		publicEvents.GET("/featured", controller.GetFeatured)            // GET /api/v1/events/featured
		publicEvents.GET("/featured/countdown", controller.StreamCountdown) // GET /api/v1/events/featured/countdown (SSE)
		publicEvents.GET("/:id", controller.GetEvent)                    // GET /api/v1/events/:id
	}

	// Admin routes - session-gated event management
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(auth.RequireSession())
	{
		adminEvents.GET("", controller.ListAdmin)      // GET /api/v1/admin/events
		adminEvents.POST("", controller.Create)        // POST /api/v1/admin/events
		adminEvents.PUT("/:id", controller.Update)     // PUT /api/v1/admin/events/:id
		adminEvents.DELETE("/:id", controller.Delete)  // DELETE /api/v1/admin/events/:id
	}
}
