package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type DeleteMechanicCommand struct {
	MechanicID uint
}

// DeleteMechanicUseCase removes a mechanic. Its ticket assignments go with
// it; the tickets themselves are kept.
type DeleteMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewDeleteMechanicUseCase(
	mechanicRepo mechanic.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteMechanicUseCase {
	return &DeleteMechanicUseCase{
		mechanicRepo: mechanicRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *DeleteMechanicUseCase) Execute(ctx context.Context, cmd DeleteMechanicCommand) error {
	uc.logger.Infow("executing delete mechanic use case", "mechanic_id", cmd.MechanicID)

	if cmd.MechanicID == 0 {
		return newNotFoundError()
	}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.mechanicRepo.Delete(txCtx, cmd.MechanicID)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete mechanic", "mechanic_id", cmd.MechanicID, "error", err)
		return translateError(err, "delete")
	}

	uc.logger.Infow("mechanic deleted successfully", "mechanic_id", cmd.MechanicID)
	return nil
}
