package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type AssignMechanicCommand struct {
	TicketID   uint
	MechanicID uint
}

// AssignMechanicUseCase adds a mechanic to a ticket. Assigning a mechanic
// that is already on the ticket succeeds without a write.
type AssignMechanicUseCase struct {
	ticketRepo   serviceticket.Repository
	mechanicRepo mechanic.Repository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewAssignMechanicUseCase(
	ticketRepo serviceticket.Repository,
	mechanicRepo mechanic.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *AssignMechanicUseCase {
	return &AssignMechanicUseCase{
		ticketRepo:   ticketRepo,
		mechanicRepo: mechanicRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *AssignMechanicUseCase) Execute(ctx context.Context, cmd AssignMechanicCommand) (*dto.ServiceTicketDTO, error) {
	uc.logger.Infow("executing assign mechanic use case",
		"ticket_id", cmd.TicketID,
		"mechanic_id", cmd.MechanicID)

	var result *serviceticket.ServiceTicket
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := loadTicketAndMechanic(txCtx, uc.ticketRepo, uc.mechanicRepo, cmd.TicketID, cmd.MechanicID)
		if err != nil {
			return err
		}

		if t.AssignMechanic(cmd.MechanicID) {
			if err := uc.ticketRepo.AddMechanic(txCtx, t.ID(), cmd.MechanicID); err != nil {
				return err
			}
		}
		result = t
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to assign mechanic",
			"ticket_id", cmd.TicketID,
			"mechanic_id", cmd.MechanicID,
			"error", err)
		return nil, translateError(err, "assign mechanic to")
	}

	uc.logger.Infow("mechanic assigned successfully",
		"ticket_id", result.ID(),
		"mechanic_id", cmd.MechanicID)

	return dto.ToServiceTicketDTO(result), nil
}

// loadTicketAndMechanic loads the ticket and confirms the mechanic exists.
// The ticket is checked first so a missing ticket wins over a missing
// mechanic.
func loadTicketAndMechanic(
	ctx context.Context,
	ticketRepo serviceticket.Repository,
	mechanicRepo mechanic.Repository,
	ticketID, mechanicID uint,
) (*serviceticket.ServiceTicket, error) {
	if ticketID == 0 {
		return nil, serviceticket.ErrServiceTicketNotFound
	}
	t, err := ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if mechanicID == 0 {
		return nil, mechanic.ErrMechanicNotFound
	}
	if _, err := mechanicRepo.GetByID(ctx, mechanicID); err != nil {
		return nil, err
	}
	return t, nil
}
