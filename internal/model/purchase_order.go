package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase orders extend the shared status set with fulfillment stages.
const (
	OrderStatusOrdered  = "ordered"
	OrderStatusShipped  = "shipped"
	OrderStatusReceived = "received"
)

// PurchaseOrder is the supplier-side counterpart of SalesOrder. Creation and
// deletion follow the same atomic header+items contract.
type PurchaseOrder struct {
	ID                   uint            `gorm:"primaryKey"`
	SupplierID           uint            `gorm:"not null;index"`
	OrderDate            time.Time       `gorm:"not null"`
	ExpectedDeliveryDate *time.Time
	TotalAmount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status               string          `gorm:"type:varchar(20);not null;default:'pending'"`
	SedeID               *uint           `gorm:"index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Supplier *Supplier           `gorm:"foreignKey:SupplierID"`
	Sede     *Sede               `gorm:"foreignKey:SedeID"`
	Items    []PurchaseOrderItem `gorm:"foreignKey:OrderID"`
}

type PurchaseOrderItem struct {
	ID                 uint            `gorm:"primaryKey"`
	OrderID            uint            `gorm:"not null;index"`
	ProductID          uint            `gorm:"not null"`
	Quantity           int             `gorm:"not null"`
	UnitCostAtPurchase decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
