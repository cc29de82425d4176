package gallery

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupGalleryRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	// Public route - gallery grid
	router.GET("/gallery", controller.List) // GET /api/v1/gallery?category=

	// Admin routes - session-gated gallery management
	adminGallery := router.Group("/admin/gallery")
	adminGallery.Use(auth.RequireSession())
	{
		adminGallery.POST("", controller.Create)       // POST /api/v1/admin/gallery
		adminGallery.PUT("/:id", controller.Update)    // PUT /api/v1/admin/gallery/:id
		adminGallery.DELETE("/:id", controller.Delete) // DELETE /api/v1/admin/gallery/:id
	}
}
