package model

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
