package models

type MechanicModel struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"uniqueIndex;size:360;not null"`

	// Note: No associations. Ticket assignments live in TicketMechanicModel
	// and are loaded by the repository.
}

func (MechanicModel) TableName() string {
	return "mechanics"
}
