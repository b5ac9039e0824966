package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog entry. Stock is NOT stored here: it is derived at
// read time from SedeProductAssociation rows, so the mapped `stock` figure is
// always consistent with the associations as of the query.
type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	SKU         string          `gorm:"column:sku;uniqueIndex;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Description *string
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
