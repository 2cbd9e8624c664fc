package dto

import (
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/shared/mapper"
)

const MsgServiceTicketNotFound = "Service ticket not found."

// ServiceTicketDTO is the wire form of a service ticket. Mechanics holds the
// ids of the assigned mechanics in ascending order.
type ServiceTicketDTO struct {
	ID          uint   `json:"id" example:"1"`
	Description string `json:"description" example:"brake repair"`
	Status      string `json:"status" example:"open"`
	Mechanics   []uint `json:"mechanics"`
}

func ToServiceTicketDTO(t *serviceticket.ServiceTicket) *ServiceTicketDTO {
	if t == nil {
		return nil
	}

	return &ServiceTicketDTO{
		ID:          t.ID(),
		Description: t.Description(),
		Status:      t.Status(),
		Mechanics:   t.MechanicIDs(),
	}
}

func ToServiceTicketDTOList(tickets []*serviceticket.ServiceTicket) []*ServiceTicketDTO {
	return mapper.MapSlice(tickets, ToServiceTicketDTO)
}
