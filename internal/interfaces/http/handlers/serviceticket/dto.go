package serviceticket

import (
	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/usecases"
	"github.com/shopfloor-inc/shopfloor/internal/shared/utils"
)

// ServiceTicketRequest is the body of both create and update. Assigned
// mechanics are managed only through the assign and remove endpoints.
type ServiceTicketRequest struct {
	Description utils.JSONString `json:"description" binding:"required,notblank,max=300" swaggertype:"string" example:"brake repair"`
	Status      utils.JSONString `json:"status" binding:"omitempty,max=50" swaggertype:"string" example:"open"`
}

func (r *ServiceTicketRequest) ToCreateCommand() usecases.CreateServiceTicketCommand {
	return usecases.CreateServiceTicketCommand{
		Description: r.Description.String(),
		Status:      r.Status.Ptr(),
	}
}

func (r *ServiceTicketRequest) ToUpdateCommand(ticketID uint) usecases.UpdateServiceTicketCommand {
	return usecases.UpdateServiceTicketCommand{
		TicketID:    ticketID,
		Description: r.Description.String(),
		Status:      r.Status.Ptr(),
	}
}
