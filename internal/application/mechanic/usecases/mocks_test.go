package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type mockMechanicRepository struct {
	CreateFunc        func(ctx context.Context, m *mechanic.Mechanic) error
	UpdateFunc        func(ctx context.Context, m *mechanic.Mechanic) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*mechanic.Mechanic, error)
	ListFunc          func(ctx context.Context) ([]*mechanic.Mechanic, error)
	ExistsByEmailFunc func(ctx context.Context, email string, excludeID uint) (bool, error)
}

func (m *mockMechanicRepository) Create(ctx context.Context, mech *mechanic.Mechanic) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mech)
	}
	return mech.SetID(1)
}

func (m *mockMechanicRepository) Update(ctx context.Context, mech *mechanic.Mechanic) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mech)
	}
	return nil
}

func (m *mockMechanicRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMechanicRepository) GetByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, mechanic.ErrMechanicNotFound
}

func (m *mockMechanicRepository) List(ctx context.Context) ([]*mechanic.Mechanic, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMechanicRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email, excludeID)
	}
	return false, nil
}

// mockTransactor runs fn inline and records how many units of work were opened.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)           {}
func (m *mockLogger) Info(msg string, args ...any)            {}
func (m *mockLogger) Warn(msg string, args ...any)            {}
func (m *mockLogger) Error(msg string, args ...any)           {}
func (m *mockLogger) With(args ...any) logger.Interface       { return m }
func (m *mockLogger) Named(name string) logger.Interface      { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}

func mustMechanic(id uint, name, email string, ticketIDs ...uint) *mechanic.Mechanic {
	m, err := mechanic.ReconstructMechanic(id, name, email, ticketIDs)
	if err != nil {
		panic(err)
	}
	return m
}
