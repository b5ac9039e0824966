package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sales order statuses. Any status may be set from any other on update: the
// API validates membership in the enum but deliberately does not enforce a
// transition table (see DESIGN.md).
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// SalesOrder is the order header. TotalAmount is always derived server-side
// from the line items; a client-supplied total is discarded.
type SalesOrder struct {
	ID          uint            `gorm:"primaryKey"`
	CustomerID  uint            `gorm:"not null;index"`
	OrderDate   time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending'"`
	SedeID      *uint           `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Customer *Customer        `gorm:"foreignKey:CustomerID"`
	Sede     *Sede            `gorm:"foreignKey:SedeID"`
	Items    []SalesOrderItem `gorm:"foreignKey:OrderID"`
}

// SalesOrderItem is one product line within a sales order. UnitPriceAtSale
// is the price at the moment of sale, decoupled from the product's current
// price so historical orders stay accurate after price changes.
type SalesOrderItem struct {
	ID              uint            `gorm:"primaryKey"`
	OrderID         uint            `gorm:"not null;index"`
	ProductID       uint            `gorm:"not null"`
	Quantity        int             `gorm:"not null"`
	UnitPriceAtSale decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
