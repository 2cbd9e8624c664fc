package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type DeleteServiceTicketCommand struct {
	TicketID uint
}

type DeleteServiceTicketUseCase struct {
	ticketRepo serviceticket.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewDeleteServiceTicketUseCase(
	ticketRepo serviceticket.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteServiceTicketUseCase {
	return &DeleteServiceTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteServiceTicketUseCase) Execute(ctx context.Context, cmd DeleteServiceTicketCommand) error {
	uc.logger.Infow("executing delete service ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return newNotFoundError()
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete service ticket", "ticket_id", cmd.TicketID, "error", err)
		return translateError(err, "delete")
	}

	uc.logger.Infow("service ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
