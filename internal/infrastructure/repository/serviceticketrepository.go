package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/mappers"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/models"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
)

type ServiceTicketRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceTicketMapper
}

func NewServiceTicketRepository(db *gorm.DB) *ServiceTicketRepository {
	return &ServiceTicketRepository{
		db:     db,
		mapper: mappers.NewServiceTicketMapper(),
	}
}

func (r *ServiceTicketRepository) Create(ctx context.Context, t *serviceticket.ServiceTicket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *ServiceTicketRepository) Update(ctx context.Context, t *serviceticket.ServiceTicket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.ServiceTicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]any{
			"description": t.Description(),
			"status":      t.Status(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update service ticket: %w", err)
	}

	return nil
}

func (r *ServiceTicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketMechanicModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete service ticket assignments: %w", err)
		}

		result := tx.Delete(&models.ServiceTicketModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete service ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return serviceticket.ErrServiceTicketNotFound
		}
		return nil
	})
}

func (r *ServiceTicketRepository) GetByID(ctx context.Context, id uint) (*serviceticket.ServiceTicket, error) {
	var model models.ServiceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, serviceticket.ErrServiceTicketNotFound
		}
		return nil, fmt.Errorf("failed to find service ticket: %w", err)
	}

	var mechanicIDs []uint
	if err := tx.Model(&models.TicketMechanicModel{}).
		Where("ticket_id = ?", id).
		Order("mechanic_id ASC").
		Pluck("mechanic_id", &mechanicIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load service ticket mechanics: %w", err)
	}

	return r.mapper.ToDomain(&model, mechanicIDs)
}

func (r *ServiceTicketRepository) List(ctx context.Context) ([]*serviceticket.ServiceTicket, error) {
	var rows []models.ServiceTicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.OrderByID()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list service tickets: %w", err)
	}
	if len(rows) == 0 {
		return []*serviceticket.ServiceTicket{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var assignments []models.TicketMechanicModel
	if err := tx.Where("ticket_id IN ?", ids).
		Order("mechanic_id ASC").
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to load service ticket mechanics: %w", err)
	}
	mechanicsByTicket := mappers.GroupAssignments(assignments, mappers.ByTicket)

	result := make([]*serviceticket.ServiceTicket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i], mechanicsByTicket[rows[i].ID])
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *ServiceTicketRepository) AddMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.TicketMechanicModel{TicketID: ticketID, MechanicID: mechanicID}).Error
	if err != nil {
		return fmt.Errorf("failed to assign mechanic %d to service ticket %d: %w", mechanicID, ticketID, err)
	}
	return nil
}

func (r *ServiceTicketRepository) RemoveMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("ticket_id = ? AND mechanic_id = ?", ticketID, mechanicID).
		Delete(&models.TicketMechanicModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove mechanic %d from service ticket %d: %w", mechanicID, ticketID, err)
	}
	return nil
}
