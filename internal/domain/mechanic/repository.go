package mechanic

import (
	"context"
	"errors"
)

var (
	ErrMechanicNotFound = errors.New("mechanic not found")
	ErrEmailTaken       = errors.New("mechanic email already registered")
)

type Repository interface {
	// Create persists m and assigns its ID. ErrEmailTaken is returned when
	// the unique email constraint rejects the row.
	Create(ctx context.Context, m *Mechanic) error
	Update(ctx context.Context, m *Mechanic) error
	// Delete removes the mechanic together with its ticket assignments.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Mechanic, error)
	List(ctx context.Context) ([]*Mechanic, error)
	// ExistsByEmail reports whether a mechanic other than excludeID already
	// uses email. Pass 0 to check against every mechanic.
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
}
