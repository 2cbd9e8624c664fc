package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

// UpdateMechanicCommand carries a complete mechanic record.
type UpdateMechanicCommand struct {
	MechanicID uint
	Name       string
	Email      string
}

type UpdateMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewUpdateMechanicUseCase(
	mechanicRepo mechanic.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateMechanicUseCase {
	return &UpdateMechanicUseCase{
		mechanicRepo: mechanicRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *UpdateMechanicUseCase) Execute(ctx context.Context, cmd UpdateMechanicCommand) (*dto.MechanicDTO, error) {
	uc.logger.Infow("executing update mechanic use case", "mechanic_id", cmd.MechanicID)

	if cmd.MechanicID == 0 {
		return nil, newNotFoundError()
	}

	var updated *mechanic.Mechanic
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		m, err := uc.mechanicRepo.GetByID(txCtx, cmd.MechanicID)
		if err != nil {
			return err
		}

		if err := m.Update(cmd.Name, cmd.Email); err != nil {
			return apperrors.NewValidationError(err.Error())
		}

		taken, err := uc.mechanicRepo.ExistsByEmail(txCtx, m.Email(), m.ID())
		if err != nil {
			return err
		}
		if taken {
			return newEmailTakenError()
		}

		if err := uc.mechanicRepo.Update(txCtx, m); err != nil {
			return err
		}
		updated = m
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to update mechanic", "mechanic_id", cmd.MechanicID, "error", err)
		return nil, translateError(err, "update")
	}

	uc.logger.Infow("mechanic updated successfully", "mechanic_id", updated.ID())

	return dto.ToMechanicDTO(updated), nil
}
