package http

import (
	mechanicUsecases "github.com/shopfloor-inc/shopfloor/internal/application/mechanic/usecases"
	ticketUsecases "github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/usecases"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

// useCases holds all use case instances used by the application.
type useCases struct {
	// Mechanic
	createMechanicUC *mechanicUsecases.CreateMechanicUseCase
	getMechanicUC    *mechanicUsecases.GetMechanicUseCase
	listMechanicsUC  *mechanicUsecases.ListMechanicsUseCase
	updateMechanicUC *mechanicUsecases.UpdateMechanicUseCase
	deleteMechanicUC *mechanicUsecases.DeleteMechanicUseCase

	// Service ticket
	createTicketUC   *ticketUsecases.CreateServiceTicketUseCase
	getTicketUC      *ticketUsecases.GetServiceTicketUseCase
	listTicketsUC    *ticketUsecases.ListServiceTicketsUseCase
	updateTicketUC   *ticketUsecases.UpdateServiceTicketUseCase
	deleteTicketUC   *ticketUsecases.DeleteServiceTicketUseCase
	assignMechanicUC *ticketUsecases.AssignMechanicUseCase
	removeMechanicUC *ticketUsecases.RemoveMechanicUseCase
}

func newUseCases(repos *repositories, txMgr db.Transactor, log logger.Interface) *useCases {
	mechanicLog := log.Named("mechanic")
	ticketLog := log.Named("serviceticket")

	return &useCases{
		createMechanicUC: mechanicUsecases.NewCreateMechanicUseCase(repos.mechanicRepo, txMgr, mechanicLog),
		getMechanicUC:    mechanicUsecases.NewGetMechanicUseCase(repos.mechanicRepo, mechanicLog),
		listMechanicsUC:  mechanicUsecases.NewListMechanicsUseCase(repos.mechanicRepo, mechanicLog),
		updateMechanicUC: mechanicUsecases.NewUpdateMechanicUseCase(repos.mechanicRepo, txMgr, mechanicLog),
		deleteMechanicUC: mechanicUsecases.NewDeleteMechanicUseCase(repos.mechanicRepo, txMgr, mechanicLog),

		createTicketUC:   ticketUsecases.NewCreateServiceTicketUseCase(repos.serviceTicketRepo, txMgr, ticketLog),
		getTicketUC:      ticketUsecases.NewGetServiceTicketUseCase(repos.serviceTicketRepo, ticketLog),
		listTicketsUC:    ticketUsecases.NewListServiceTicketsUseCase(repos.serviceTicketRepo, ticketLog),
		updateTicketUC:   ticketUsecases.NewUpdateServiceTicketUseCase(repos.serviceTicketRepo, txMgr, ticketLog),
		deleteTicketUC:   ticketUsecases.NewDeleteServiceTicketUseCase(repos.serviceTicketRepo, txMgr, ticketLog),
		assignMechanicUC: ticketUsecases.NewAssignMechanicUseCase(repos.serviceTicketRepo, repos.mechanicRepo, txMgr, ticketLog),
		removeMechanicUC: ticketUsecases.NewRemoveMechanicUseCase(repos.serviceTicketRepo, repos.mechanicRepo, txMgr, ticketLog),
	}
}
