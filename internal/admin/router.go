package admin

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupAdminRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	adminGroup := router.Group("/admin")
	{
		adminGroup.POST("/login", controller.Login)
		adminGroup.POST("/logout", controller.Logout)
	}

	profile := router.Group("/admin/profile")
	profile.Use(auth.RequireSession())
	{
		profile.GET("", controller.GetProfile)
		profile.PUT("", controller.UpdateProfile)
	}
}
