package usecases

import (
	"context"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

type mockServiceTicketRepository struct {
	CreateFunc         func(ctx context.Context, t *serviceticket.ServiceTicket) error
	UpdateFunc         func(ctx context.Context, t *serviceticket.ServiceTicket) error
	DeleteFunc         func(ctx context.Context, id uint) error
	GetByIDFunc        func(ctx context.Context, id uint) (*serviceticket.ServiceTicket, error)
	ListFunc           func(ctx context.Context) ([]*serviceticket.ServiceTicket, error)
	AddMechanicFunc    func(ctx context.Context, ticketID, mechanicID uint) error
	RemoveMechanicFunc func(ctx context.Context, ticketID, mechanicID uint) error
}

func (m *mockServiceTicketRepository) Create(ctx context.Context, t *serviceticket.ServiceTicket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockServiceTicketRepository) Update(ctx context.Context, t *serviceticket.ServiceTicket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockServiceTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockServiceTicketRepository) GetByID(ctx context.Context, id uint) (*serviceticket.ServiceTicket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, serviceticket.ErrServiceTicketNotFound
}

func (m *mockServiceTicketRepository) List(ctx context.Context) ([]*serviceticket.ServiceTicket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockServiceTicketRepository) AddMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	if m.AddMechanicFunc != nil {
		return m.AddMechanicFunc(ctx, ticketID, mechanicID)
	}
	return nil
}

func (m *mockServiceTicketRepository) RemoveMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	if m.RemoveMechanicFunc != nil {
		return m.RemoveMechanicFunc(ctx, ticketID, mechanicID)
	}
	return nil
}

// mockMechanicRepository only answers lookups; the ticket use cases never
// write mechanics.
type mockMechanicRepository struct {
	mechanic.Repository
	existing map[uint]bool
}

func (m *mockMechanicRepository) GetByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	if !m.existing[id] {
		return nil, mechanic.ErrMechanicNotFound
	}
	return mechanic.ReconstructMechanic(id, "Jo", "jo@x.com", nil)
}

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

func mustTicket(id uint, description, status string, mechanicIDs ...uint) *serviceticket.ServiceTicket {
	t, err := serviceticket.ReconstructServiceTicket(id, description, status, mechanicIDs)
	if err != nil {
		panic(err)
	}
	return t
}

func ticketRepoWith(t *serviceticket.ServiceTicket) *mockServiceTicketRepository {
	return &mockServiceTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*serviceticket.ServiceTicket, error) {
			if id != t.ID() {
				return nil, serviceticket.ErrServiceTicketNotFound
			}
			return t, nil
		},
	}
}
