package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
)

type CreateMechanicExecutor interface {
	Execute(ctx context.Context, cmd CreateMechanicCommand) (*dto.MechanicDTO, error)
}

type GetMechanicExecutor interface {
	Execute(ctx context.Context, query GetMechanicQuery) (*dto.MechanicDTO, error)
}

type ListMechanicsExecutor interface {
	Execute(ctx context.Context) ([]*dto.MechanicDTO, error)
}

type UpdateMechanicExecutor interface {
	Execute(ctx context.Context, cmd UpdateMechanicCommand) (*dto.MechanicDTO, error)
}

type DeleteMechanicExecutor interface {
	Execute(ctx context.Context, cmd DeleteMechanicCommand) error
}
