package model

import "time"

// Sede is a physical business location. Inventory is tracked per sede via
// SedeProductAssociation.
type Sede struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Sede) TableName() string { return "sedes" }
