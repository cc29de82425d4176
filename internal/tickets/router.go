package tickets

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/middleware"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller, auth *middleware.SessionAuth) {
	// Public route - booking page ticket list
	publicTickets := router.Group("/tickets")
	{
		publicTickets.GET("/event/:eventId", controller.ListByEvent) // GET /api/v1/tickets/event/:eventId
	}

	// Admin routes - session-gated ticket management
	adminTickets := router.Group("/admin/tickets")
	adminTickets.Use(auth.RequireSession())
	{
		adminTickets.GET("", controller.ListAdmin)     // GET /api/v1/admin/tickets
		adminTickets.POST("", controller.Create)       // POST /api/v1/admin/tickets
		adminTickets.PUT("/:id", controller.Update)    // PUT /api/v1/admin/tickets/:id
		adminTickets.DELETE("/:id", controller.Delete) // DELETE /api/v1/admin/tickets/:id
	}
}
