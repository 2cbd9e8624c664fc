package dto

import (
	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/shared/mapper"
)

const (
	MsgMechanicNotFound   = "Mechanic not found."
	MsgEmailAlreadyExists = "Email already registered."
)

// MechanicDTO is the wire form of a mechanic. Tickets holds the ids of the
// assigned service tickets in ascending order.
type MechanicDTO struct {
	ID      uint   `json:"id" example:"1"`
	Name    string `json:"name" example:"Jo"`
	Email   string `json:"email" example:"jo@example.com"`
	Tickets []uint `json:"tickets"`
}

func ToMechanicDTO(m *mechanic.Mechanic) *MechanicDTO {
	if m == nil {
		return nil
	}

	return &MechanicDTO{
		ID:      m.ID(),
		Name:    m.Name(),
		Email:   m.Email(),
		Tickets: m.TicketIDs(),
	}
}

func ToMechanicDTOList(mechanics []*mechanic.Mechanic) []*MechanicDTO {
	return mapper.MapSlice(mechanics, ToMechanicDTO)
}
