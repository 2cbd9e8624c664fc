package models

// ServiceTicketModel leaves the status default to the domain so an
// explicitly empty status survives the insert.
type ServiceTicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:300;not null"`
	Status      string `gorm:"size:50;not null"`
}

func (ServiceTicketModel) TableName() string {
	return "service_tickets"
}

// TicketMechanicModel is one assignment of a mechanic to a service ticket.
// The composite primary key keeps each pair unique.
type TicketMechanicModel struct {
	TicketID   uint `gorm:"primaryKey;autoIncrement:false"`
	MechanicID uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (TicketMechanicModel) TableName() string {
	return "ticket_mechanic"
}
