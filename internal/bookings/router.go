package bookings

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	// Public routes - booking flow
	publicBookings := router.Group("/bookings")
	{
		publicBookings.POST("", controller.Create)                           // POST /api/v1/bookings
		publicBookings.GET("/reference/:reference", controller.GetByReference) // GET /api/v1/bookings/reference/:reference
	}

	// Admin routes - session-gated booking management
	adminBookings := router.Group("/admin/bookings")
	adminBookings.Use(auth.RequireSession())
	{
		adminBookings.GET("", controller.ListAdmin)                        // GET /api/v1/admin/bookings
		adminBookings.GET("/event/:eventId", controller.ListAdminByEvent)  // GET /api/v1/admin/bookings/event/:eventId
		adminBookings.GET("/ticket/:ticketId", controller.ListAdminByTicket) // GET /api/v1/admin/bookings/ticket/:ticketId
		adminBookings.PUT("/:id/status", controller.UpdateStatus)          // PUT /api/v1/admin/bookings/:id/status
		adminBookings.DELETE("/:id", controller.Delete)                    // DELETE /api/v1/admin/bookings/:id
	}
}
