package serviceticket

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	MaxDescriptionLength = 300
	MaxStatusLength      = 50

	// DefaultStatus is applied when a ticket is created without a status.
	// Status is otherwise free-form text.
	DefaultStatus = "open"
)

// ServiceTicket is a unit of repair work. Its mechanic set has set
// semantics: a mechanic appears at most once.
type ServiceTicket struct {
	id          uint
	description string
	status      string
	mechanicIDs []uint
}

// NewServiceTicket validates and builds a ticket. A nil status means the
// caller did not supply one and DefaultStatus applies.
func NewServiceTicket(description string, status *string) (*ServiceTicket, error) {
	t := &ServiceTicket{status: DefaultStatus, mechanicIDs: []uint{}}
	if err := t.Update(description, status); err != nil {
		return nil, err
	}
	return t, nil
}

func ReconstructServiceTicket(id uint, description, status string, mechanicIDs []uint) (*ServiceTicket, error) {
	if id == 0 {
		return nil, fmt.Errorf("service ticket ID cannot be zero")
	}
	ids := slices.Clone(mechanicIDs)
	if ids == nil {
		ids = []uint{}
	}
	slices.Sort(ids)

	return &ServiceTicket{
		id:          id,
		description: description,
		status:      status,
		mechanicIDs: slices.Compact(ids),
	}, nil
}

func (t *ServiceTicket) ID() uint {
	return t.id
}

func (t *ServiceTicket) Description() string {
	return t.description
}

func (t *ServiceTicket) Status() string {
	return t.status
}

// MechanicIDs returns the assigned mechanic IDs in ascending order.
func (t *ServiceTicket) MechanicIDs() []uint {
	return slices.Clone(t.mechanicIDs)
}

func (t *ServiceTicket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("service ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update overwrites the description, and the status only when one is given.
func (t *ServiceTicket) Update(description string, status *string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if status != nil && utf8.RuneCountInString(*status) > MaxStatusLength {
		return fmt.Errorf("status exceeds maximum length of %d characters", MaxStatusLength)
	}

	t.description = description
	if status != nil {
		t.status = *status
	}
	return nil
}

func (t *ServiceTicket) HasMechanic(mechanicID uint) bool {
	_, found := slices.BinarySearch(t.mechanicIDs, mechanicID)
	return found
}

// AssignMechanic adds mechanicID to the ticket and reports whether the set
// changed. Assigning an already assigned mechanic is a no-op.
func (t *ServiceTicket) AssignMechanic(mechanicID uint) bool {
	i, found := slices.BinarySearch(t.mechanicIDs, mechanicID)
	if found {
		return false
	}
	t.mechanicIDs = slices.Insert(t.mechanicIDs, i, mechanicID)
	return true
}

// RemoveMechanic drops mechanicID from the ticket and reports whether the
// set changed.
func (t *ServiceTicket) RemoveMechanic(mechanicID uint) bool {
	i, found := slices.BinarySearch(t.mechanicIDs, mechanicID)
	if !found {
		return false
	}
	t.mechanicIDs = slices.Delete(t.mechanicIDs, i, i+1)
	return true
}
