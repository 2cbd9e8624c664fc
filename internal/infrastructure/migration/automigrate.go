package migration

import (
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model managed by GORM AutoMigrate.
func AutoMigrateModels() []any {
	return []any{
		&models.MechanicModel{},
		&models.ServiceTicketModel{},
		&models.TicketMechanicModel{},
	}
}
