package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

// UpdateServiceTicketCommand carries a complete ticket record. A nil Status
// leaves the stored status unchanged.
type UpdateServiceTicketCommand struct {
	TicketID    uint
	Description string
	Status      *string
}

type UpdateServiceTicketUseCase struct {
	ticketRepo serviceticket.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewUpdateServiceTicketUseCase(
	ticketRepo serviceticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateServiceTicketUseCase {
	return &UpdateServiceTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateServiceTicketUseCase) Execute(ctx context.Context, cmd UpdateServiceTicketCommand) (*dto.ServiceTicketDTO, error) {
	uc.logger.Infow("executing update service ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, newNotFoundError()
	}

	var updated *serviceticket.ServiceTicket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := t.Update(cmd.Description, cmd.Status); err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update service ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, translateError(err, "update")
	}

	uc.logger.Infow("service ticket updated successfully", "ticket_id", updated.ID())

	return dto.ToServiceTicketDTO(updated), nil
}
