package mappers

import (
	"fmt"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/models"
)

// MechanicMapper converts between mechanic entities and persistence models.
type MechanicMapper interface {
	ToModel(m *mechanic.Mechanic) *models.MechanicModel
	// ToDomain rebuilds the entity; ticketIDs come from the join table.
	ToDomain(model *models.MechanicModel, ticketIDs []uint) (*mechanic.Mechanic, error)
}

type mechanicMapper struct{}

func NewMechanicMapper() MechanicMapper {
	return &mechanicMapper{}
}

func (mechanicMapper) ToModel(m *mechanic.Mechanic) *models.MechanicModel {
	return &models.MechanicModel{
		ID:    m.ID(),
		Name:  m.Name(),
		Email: m.Email(),
	}
}

func (mechanicMapper) ToDomain(model *models.MechanicModel, ticketIDs []uint) (*mechanic.Mechanic, error) {
	if model == nil {
		return nil, fmt.Errorf("mechanic model is nil")
	}
	m, err := mechanic.ReconstructMechanic(model.ID, model.Name, model.Email, ticketIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct mechanic %d: %w", model.ID, err)
	}
	return m, nil
}
