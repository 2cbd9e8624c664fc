package http

import (
	"gorm.io/gorm"

	"github.com/shopfloor-inc/shopfloor/internal/domain/mechanic"
	"github.com/shopfloor-inc/shopfloor/internal/domain/serviceticket"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	mechanicRepo      mechanic.Repository
	serviceTicketRepo serviceticket.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		mechanicRepo:      repository.NewMechanicRepository(db),
		serviceTicketRepo: repository.NewServiceTicketRepository(db),
	}
}
