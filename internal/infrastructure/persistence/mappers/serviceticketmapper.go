package mappers

import (
	"fmt"

	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/models"
)

// ServiceTicketMapper converts between service ticket entities and
// persistence models.
type ServiceTicketMapper interface {
	ToModel(t *serviceticket.ServiceTicket) *models.ServiceTicketModel
	ToDomain(model *models.ServiceTicketModel, mechanicIDs []uint) (*serviceticket.ServiceTicket, error)
}

type serviceTicketMapper struct{}

func NewServiceTicketMapper() ServiceTicketMapper {
	return &serviceTicketMapper{}
}

func (serviceTicketMapper) ToModel(t *serviceticket.ServiceTicket) *models.ServiceTicketModel {
	return &models.ServiceTicketModel{
		ID:          t.ID(),
		Description: t.Description(),
		Status:      t.Status(),
	}
}

func (serviceTicketMapper) ToDomain(model *models.ServiceTicketModel, mechanicIDs []uint) (*serviceticket.ServiceTicket, error) {
	if model == nil {
		return nil, fmt.Errorf("service ticket model is nil")
	}
	t, err := serviceticket.ReconstructServiceTicket(model.ID, model.Description, model.Status, mechanicIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct service ticket %d: %w", model.ID, err)
	}
	return t, nil
}

// GroupAssignments indexes join rows by one side of the pair.
func GroupAssignments(rows []models.TicketMechanicModel, key func(models.TicketMechanicModel) (uint, uint)) map[uint][]uint {
	grouped := make(map[uint][]uint)
	for _, row := range rows {
		k, v := key(row)
		grouped[k] = append(grouped[k], v)
	}
	return grouped
}

// ByTicket keys assignments by ticket ID.
func ByTicket(row models.TicketMechanicModel) (uint, uint) {
	return row.TicketID, row.MechanicID
}

// ByMechanic keys assignments by mechanic ID.
func ByMechanic(row models.TicketMechanicModel) (uint, uint) {
	return row.MechanicID, row.TicketID
}
