package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
)

type CreateServiceTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateServiceTicketCommand) (*dto.ServiceTicketDTO, error)
}

type GetServiceTicketExecutor interface {
	Execute(ctx context.Context, query GetServiceTicketQuery) (*dto.ServiceTicketDTO, error)
}

type ListServiceTicketsExecutor interface {
	Execute(ctx context.Context) ([]*dto.ServiceTicketDTO, error)
}

type UpdateServiceTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateServiceTicketCommand) (*dto.ServiceTicketDTO, error)
}

type DeleteServiceTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteServiceTicketCommand) error
}

type AssignMechanicExecutor interface {
	Execute(ctx context.Context, cmd AssignMechanicCommand) (*dto.ServiceTicketDTO, error)
}

type RemoveMechanicExecutor interface {
	Execute(ctx context.Context, cmd RemoveMechanicCommand) (*dto.ServiceTicketDTO, error)
}
