package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type ListMechanicsUseCase struct {
	mechanicRepo mechanic.Repository
	logger       logger.Interface
}

func NewListMechanicsUseCase(mechanicRepo mechanic.Repository, logger logger.Interface) *ListMechanicsUseCase {
	return &ListMechanicsUseCase{
		mechanicRepo: mechanicRepo,
		logger:       logger,
	}
}

func (uc *ListMechanicsUseCase) Execute(ctx context.Context) ([]*dto.MechanicDTO, error) {
	mechanics, err := uc.mechanicRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list mechanics", "error", err)
		return nil, translateError(err, "list")
	}

	uc.logger.Debugw("mechanics listed", "count", len(mechanics))

	return dto.ToMechanicDTOList(mechanics), nil
}
