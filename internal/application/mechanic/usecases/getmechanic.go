package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type GetMechanicQuery struct {
	MechanicID uint
}

type GetMechanicUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewGetMechanicUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *GetMechanicUseCase {
	return &GetMechanicUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *GetMechanicUseCase) Execute(ctx context.Context, query GetMechanicQuery) (*dto.MechanicDTO, error) {
	if query.MechanicID == 0 {
		return nil, newNotFoundError()
	}

	m, err := uc.mechanicRepo.GetByID(ctx, query.MechanicID)
	if err != nil {
		uc.logger.Warnw("failed to get mechanic", "mechanic_id", query.MechanicID, "error", err)
		return nil, translateError(err, "get")
	}

	return dto.ToMechanicDTO(m), nil
}
