package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type CreateMechanicCommand struct {
	Name  string
	Email string
}

type CreateMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	txMgr        db.Transactor
	logger       logger.Interface
}

func NewCreateMechanicUseCase(
	mechanicRepo mechanic.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateMechanicUseCase {
	return &CreateMechanicUseCase{
		mechanicRepo: mechanicRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateMechanicUseCase) Execute(ctx context.Context, cmd CreateMechanicCommand) (*dto.MechanicDTO, error) {
	uc.logger.Infow("executing create mechanic use case", "email", cmd.Email)

	m, err := mechanic.NewMechanic(cmd.Name, cmd.Email)
	if err != nil {
		uc.logger.Warnw("invalid create mechanic command", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		taken, err := uc.mechanicRepo.ExistsByEmail(txCtx, m.Email(), 0)
		if err != nil {
			return err
		}
		if taken {
			return newEmailTakenError()
		}
		return uc.mechanicRepo.Create(txCtx, m)
	})
	if err != nil {
		uc.logger.Errorw("failed to create mechanic", "email", cmd.Email, "error", err)
		return nil, translateError(err, "create")
	}

	uc.logger.Infow("mechanic created successfully", "mechanic_id", m.ID())

	return dto.ToMechanicDTO(m), nil
}
