package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/mappers"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/models"
	"github.com/shopfloor-inc/shopfloor/internal/shared/db"
	apperrors "github.com/shopfloor-inc/shopfloor/internal/shared/errors"
)

type MechanicRepository struct {
	db     *gorm.DB
	mapper mappers.MechanicMapper
}

func NewMechanicRepository(db *gorm.DB) *MechanicRepository {
	return &MechanicRepository{
		db:     db,
		mapper: mappers.NewMechanicMapper(),
	}
}

func (r *MechanicRepository) Create(ctx context.Context, m *mechanic.Mechanic) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("failed to save mechanic: %w", mechanic.ErrEmailTaken)
		}
		return fmt.Errorf("failed to save mechanic: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MechanicRepository) Update(ctx context.Context, m *mechanic.Mechanic) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Note: RowsAffected may be 0 when updated values are identical to existing values.
	err := tx.Model(&models.MechanicModel{}).
		Where("id = ?", m.ID()).
		Updates(map[string]any{
			"name":  m.Name(),
			"email": m.Email(),
		}).Error
	if err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("failed to update mechanic: %w", mechanic.ErrEmailTaken)
		}
		return fmt.Errorf("failed to update mechanic: %w", err)
	}

	return nil
}

func (r *MechanicRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mechanic_id = ?", id).Delete(&models.TicketMechanicModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete mechanic assignments: %w", err)
		}

		result := tx.Delete(&models.MechanicModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete mechanic: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return mechanic.ErrMechanicNotFound
		}
		return nil
	})
}

func (r *MechanicRepository) GetByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	var model models.MechanicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, mechanic.ErrMechanicNotFound
		}
		return nil, fmt.Errorf("failed to find mechanic: %w", err)
	}

	var ticketIDs []uint
	if err := tx.Model(&models.TicketMechanicModel{}).
		Where("mechanic_id = ?", id).
		Order("ticket_id ASC").
		Pluck("ticket_id", &ticketIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load mechanic tickets: %w", err)
	}

	return r.mapper.ToDomain(&model, ticketIDs)
}

func (r *MechanicRepository) List(ctx context.Context) ([]*mechanic.Mechanic, error) {
	var rows []models.MechanicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Scopes(db.OrderByID()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}
	if len(rows) == 0 {
		return []*mechanic.Mechanic{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	// Load all assignments in a single query and group by mechanic
	var assignments []models.TicketMechanicModel
	if err := tx.Where("mechanic_id IN ?", ids).
		Order("ticket_id ASC").
		Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to load mechanic tickets: %w", err)
	}
	ticketsByMechanic := mappers.GroupAssignments(assignments, mappers.ByMechanic)

	result := make([]*mechanic.Mechanic, 0, len(rows))
	for i := range rows {
		m, err := r.mapper.ToDomain(&rows[i], ticketsByMechanic[rows[i].ID])
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}

func (r *MechanicRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.MechanicModel{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check mechanic email: %w", err)
	}
	return count > 0, nil
}
