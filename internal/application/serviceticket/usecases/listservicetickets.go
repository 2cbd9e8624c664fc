package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type ListServiceTicketsUseCase struct {
	ticketRepo serviceticket.Repository
	logger     logger.Interface
}

func NewListServiceTicketsUseCase(ticketRepo serviceticket.Repository, logger logger.Interface) *ListServiceTicketsUseCase {
	return &ListServiceTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListServiceTicketsUseCase) Execute(ctx context.Context) ([]*dto.ServiceTicketDTO, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list service tickets", "error", err)
		return nil, translateError(err, "list")
	}

	uc.logger.Debugw("service tickets listed", "count", len(tickets))

	return dto.ToServiceTicketDTOList(tickets), nil
}
