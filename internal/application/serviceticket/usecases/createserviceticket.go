package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type CreateServiceTicketCommand struct {
	Description string
	// Status is nil when the caller did not send one.
	Status *string
}

type CreateServiceTicketUseCase struct {
	ticketRepo serviceticket.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCreateServiceTicketUseCase(
	ticketRepo serviceticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateServiceTicketUseCase {
	return &CreateServiceTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateServiceTicketUseCase) Execute(ctx context.Context, cmd CreateServiceTicketCommand) (*dto.ServiceTicketDTO, error) {
	uc.logger.Infow("executing create service ticket use case")

	t, err := serviceticket.NewServiceTicket(cmd.Description, cmd.Status)
	if err != nil {
		uc.logger.Warnw("invalid create service ticket command", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Create(txCtx, t)
	})
	if err != nil {
		uc.logger.Errorw("failed to create service ticket", "error", err)
		return nil, translateError(err, "create")
	}

	uc.logger.Infow("service ticket created successfully", "ticket_id", t.ID(), "status", t.Status())

	return dto.ToServiceTicketDTO(t), nil
}
