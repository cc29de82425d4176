package notifications

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupNotificationRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	// Public route - active banner for the announcement strip
	router.GET("/notifications", controller.GetActive) // GET /api/v1/notifications

	// Admin routes - session-gated banner management
	adminBanners := router.Group("/admin/notifications")
	adminBanners.Use(auth.RequireSession())
	{
		adminBanners.GET("", controller.ListAll)       // GET /api/v1/admin/notifications
		adminBanners.POST("", controller.Create)       // POST /api/v1/admin/notifications
		adminBanners.PUT("/:id", controller.Update)    // PUT /api/v1/admin/notifications/:id
		adminBanners.DELETE("/:id", controller.Delete) // DELETE /api/v1/admin/notifications/:id
	}
}
