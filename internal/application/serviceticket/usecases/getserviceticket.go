package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type GetServiceTicketQuery struct {
	TicketID uint
}

type GetServiceTicketUseCase struct {
	ticketRepo serviceticket.Repository
	logger     logger.Interface
}

func NewGetServiceTicketUseCase(ticketRepo serviceticket.Repository, logger logger.Interface) *GetServiceTicketUseCase {
	return &GetServiceTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetServiceTicketUseCase) Execute(ctx context.Context, query GetServiceTicketQuery) (*dto.ServiceTicketDTO, error) {
	if query.TicketID == 0 {
		return nil, newNotFoundError()
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Warnw("failed to get service ticket", "ticket_id", query.TicketID, "error", err)
		return nil, translateError(err, "get")
	}

	return dto.ToServiceTicketDTO(t), nil
}
