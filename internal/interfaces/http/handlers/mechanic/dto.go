package mechanic

import (
	"github.com/shopfloor-inc/shopfloor/internal/application/mechanic/usecases"
	"github.com/shopfloor-inc/shopfloor/internal/shared/utils"
)

// MechanicRequest is the body of both create and update; updates replace
// the whole record.
type MechanicRequest struct {
	Name  utils.JSONString `json:"name" binding:"required,notblank,max=255" swaggertype:"string" example:"Jo"`
	Email utils.JSONString `json:"email" binding:"required,notblank,email,max=360" swaggertype:"string" example:"jo@example.com"`
}

func (r *MechanicRequest) ToCreateCommand() usecases.CreateMechanicCommand {
	return usecases.CreateMechanicCommand{
		Name:  r.Name.String(),
		Email: r.Email.String(),
	}
}

func (r *MechanicRequest) ToUpdateCommand(mechanicID uint) usecases.UpdateMechanicCommand {
	return usecases.UpdateMechanicCommand{
		MechanicID: mechanicID,
		Name:       r.Name.String(),
		Email:      r.Email.String(),
	}
}
