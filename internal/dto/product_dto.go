package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateProductRequest optionally seeds initial stock at one sede; when
// SedeID is present the association row is created in the same transaction
// as the product.
type CreateProductRequest struct {
	Name               string          `json:"name"        validate:"required,min=1,max=100"`
	SKU                string          `json:"sku"         validate:"required,min=1,max=50"`
	Price              decimal.Decimal `json:"price"       validate:"required,gt=0"`
	Description        *string         `json:"description" validate:"omitempty,max=500"`
	Category           *string         `json:"category"`
	SedeID             *uint           `json:"sedeId"             validate:"omitempty,gt=0"`
	InitialStockAtSede *int            `json:"initialStockAtSede" validate:"omitempty,min=0"`
}

// UpdateProductRequest applies only the fields explicitly provided.
type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=100"`
	SKU         *string          `json:"sku"         validate:"omitempty,min=1,max=50"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SedeStock is one (sede, quantity) pair attached to a mapped product.
type SedeStock struct {
	SedeID uint `json:"sedeId"`
	Stock  int  `json:"stock"`
}

// ProductResponse carries the derived, read-only stock figures: Stock is the
// sum of StockBySede quantities, computed at mapping time and never persisted.
type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category"`
	CreatedAt   *string         `json:"createdAt"`
	UpdatedAt   *string         `json:"updatedAt"`
	StockBySede []SedeStock     `json:"stockBySede"`
	Stock       int             `json:"stock"`
}
