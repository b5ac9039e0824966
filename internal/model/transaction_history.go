package model

import "time"

// TransactionHistory is an append-only audit row. Rows are never updated or
// deleted once created; no routes exist for either operation.
type TransactionHistory struct {
	ID              uint   `gorm:"primaryKey"`
	TransactionType string `gorm:"not null"`
	TransactionID   *uint
	EntityTable     *string
	UserID          *uint `gorm:"index"`
	Details         *string
	TransactionDate time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}

func (TransactionHistory) TableName() string { return "transaction_history" }
