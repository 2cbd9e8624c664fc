package routes

import (
	"github.com/gin-gonic/gin"

	ticketHandlers "github.com/shopfloor-inc/shopfloor/internal/interfaces/http/handlers/serviceticket"
)

type ServiceTicketRouteConfig struct {
	ServiceTicketHandler *ticketHandlers.Handler
}

func SetupServiceTicketRoutes(engine *gin.Engine, config *ServiceTicketRouteConfig) {
	tickets := engine.Group("/service-tickets")
	{
		// Collection operations keep the trailing slash
		tickets.POST("/",
			config.ServiceTicketHandler.CreateServiceTicket)
		tickets.GET("/",
			config.ServiceTicketHandler.ListServiceTickets)

		// Assignment actions
		tickets.PUT("/:id/assign-mechanic/:mechanic_id",
			config.ServiceTicketHandler.AssignMechanic)
		tickets.PUT("/:id/remove-mechanic/:mechanic_id",
			config.ServiceTicketHandler.RemoveMechanic)

		tickets.GET("/:id",
			config.ServiceTicketHandler.GetServiceTicket)
		tickets.PUT("/:id",
			config.ServiceTicketHandler.UpdateServiceTicket)
		tickets.DELETE("/:id",
			config.ServiceTicketHandler.DeleteServiceTicket)
	}
}
