package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/database"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/persistence/models"
	"github.com/shopfloor-inc/shopfloor/internal/shared/config"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Open(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "repository.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	err = db.AutoMigrate(&models.MechanicModel{}, &models.ServiceTicketModel{}, &models.TicketMechanicModel{})
	require.NoError(t, err)

	return db
}

func createTestMechanic(t *testing.T, repo *MechanicRepository, name, email string) *mechanic.Mechanic {
	m, err := mechanic.NewMechanic(name, email)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), m))
	return m
}

func createTestTicket(t *testing.T, repo *ServiceTicketRepository, description string) *serviceticket.ServiceTicket {
	tk, err := serviceticket.NewServiceTicket(description, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(t.Context(), tk))
	return tk
}
