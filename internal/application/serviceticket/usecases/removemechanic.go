package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type RemoveMechanicCommand struct {
	TicketID   uint
	MechanicID uint
}

// RemoveMechanicUseCase takes a mechanic off a ticket. Removing a mechanic
// that is not assigned returns the unchanged ticket.
type RemoveMechanicUseCase struct {
	ticketRepo   serviceticket.Repository
	mechanicRepo mechanic.Repository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewRemoveMechanicUseCase(
	ticketRepo serviceticket.Repository,
	mechanicRepo mechanic.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *RemoveMechanicUseCase {
	return &RemoveMechanicUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *RemoveMechanicUseCase) Execute(ctx context.Context, cmd RemoveMechanicCommand) (*dto.ServiceTicketDTO, error) {
	uc.logger.Infow("executing remove mechanic use case",
		"ticket_id", cmd.TicketID,
		"mechanic_id", cmd.MechanicID)

	var result *serviceticket.ServiceTicket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := loadTicketAndMechanic(txCtx, uc.ticketRepo, uc.mechanicRepo, cmd.TicketID, cmd.MechanicID)
		if err != nil {
			return err
		}

		if t.RemoveMechanic(cmd.MechanicID) {
			if err := uc.ticketRepo.RemoveMechanic(txCtx, t.ID(), cmd.MechanicID); err != nil {
				return err
			}
		} else {
			uc.logger.Debugw("mechanic not assigned, nothing to remove",
				"ticket_id", cmd.TicketID,
				"mechanic_id", cmd.MechanicID)
		}
		result = t
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to remove mechanic",
			"ticket_id", cmd.TicketID,
			"mechanic_id", cmd.MechanicID,
			"error", err)
		return nil, translateError(err, "remove mechanic from")
	}

	uc.logger.Infow("mechanic removal completed",
		"ticket_id", result.ID(),
		"mechanic_id", cmd.MechanicID)

	return dto.ToServiceTicketDTO(result), nil
}
