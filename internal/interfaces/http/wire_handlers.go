package http

import (
	"github.com/shopfloor-inc/shopfloor/internal/interfaces/http/handlers"
	mechanicHandlers "github.com/shopfloor-inc/shopfloor/internal/interfaces/http/handlers/mechanic"
	ticketHandlers "github.com/shopfloor-inc/shopfloor/internal/interfaces/http/handlers/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler        *handlers.HealthHandler
	mechanicHandler      *mechanicHandlers.Handler
	serviceTicketHandler *ticketHandlers.Handler
}

func newHandlers(ucs *useCases, pinger handlers.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(pinger, log.Named("health")),
		mechanicHandler: mechanicHandlers.NewHandler(
			ucs.createMechanicUC,
			ucs.getMechanicUC,
			ucs.listMechanicsUC,
			ucs.updateMechanicUC,
			ucs.deleteMechanicUC,
			log.Named("mechanic"),
		),
		serviceTicketHandler: ticketHandlers.NewHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.updateTicketUC,
			ucs.deleteTicketUC,
			ucs.assignMechanicUC,
			ucs.removeMechanicUC,
			log.Named("serviceticket"),
		),
	}
}
