package images

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupImageRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	// Admin-only image hosting proxy
	adminImages := router.Group("/admin/images")
	adminImages.Use(auth.RequireSession())
	{
		adminImages.POST("/upload", controller.Upload)    // POST /api/v1/admin/images/upload
		adminImages.DELETE("/delete/:id", controller.Delete) // DELETE /api/v1/admin/images/delete/:id
	}
}
