package serviceticket

import (
	"context"
	"errors"
)

var ErrServiceTicketNotFound = errors.New("service ticket not found")

type Repository interface {
	Create(ctx context.Context, t *ServiceTicket) error
	// Update persists description and status. Assignments are changed only
	// through AddMechanic and RemoveMechanic.
	Update(ctx context.Context, t *ServiceTicket) error
	// Delete removes the ticket together with its mechanic assignments.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*ServiceTicket, error)
	List(ctx context.Context) ([]*ServiceTicket, error)
	// AddMechanic records the assignment; recording it twice is a no-op.
	AddMechanic(ctx context.Context, ticketID, mechanicID uint) error
	RemoveMechanic(ctx context.Context, ticketID, mechanicID uint) error
}
