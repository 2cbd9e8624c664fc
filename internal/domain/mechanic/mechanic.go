package mechanic

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength  = 255
	MaxEmailLength = 360
)

// Mechanic is a shop employee that service tickets can be assigned to.
type Mechanic struct {
	id        uint
	name      string
	email     string
	ticketIDs []uint
}

func NewMechanic(name, email string) (*Mechanic, error) {
	m := &Mechanic{ticketIDs: []uint{}}
	if err := m.Update(name, email); err != nil {
		return nil, err
	}
	return m, nil
}

// ReconstructMechanic rebuilds a persisted mechanic. ticketIDs lists the
// service tickets the mechanic is currently assigned to.
func ReconstructMechanic(id uint, name, email string, ticketIDs []uint) (*Mechanic, error) {
	if id == 0 {
		return nil, fmt.Errorf("mechanic ID cannot be zero")
	}
	ids := slices.Clone(ticketIDs)
	if ids == nil {
		ids = []uint{}
	}
	slices.Sort(ids)

	return &Mechanic{
		id:        id,
		name:      name,
		email:     email,
		ticketIDs: slices.Compact(ids),
	}, nil
}

func (m *Mechanic) ID() uint {
	return m.id
}

func (m *Mechanic) Name() string {
	return m.name
}

func (m *Mechanic) Email() string {
	return m.email
}

func (m *Mechanic) TicketIDs() []uint {
	return slices.Clone(m.ticketIDs)
}

func (m *Mechanic) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("mechanic ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("mechanic ID cannot be zero")
	}
	m.id = id
	return nil
}

// Update replaces every mutable field. Both values are required; a full
// record is always supplied.
func (m *Mechanic) Update(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required")
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return fmt.Errorf("email exceeds maximum length of %d characters", MaxEmailLength)
	}

	m.name = name
	m.email = email
	return nil
}
