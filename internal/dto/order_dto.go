package dto

import "github.com/shopspring/decimal"

// ─── Sales orders ────────────────────────────────────────────────────────────

type SalesOrderItemRequest struct {
	ProductID       uint            `json:"productId"       validate:"required,gt=0"`
	Quantity        int             `json:"quantity"        validate:"required,gt=0"`
	UnitPriceAtSale decimal.Decimal `json:"unitPriceAtSale" validate:"required,gt=0"`
}

// CreateSalesOrderRequest carries no total field: the total is always
// computed server-side from the items.
type CreateSalesOrderRequest struct {
	CustomerID uint                    `json:"customerId" validate:"required,gt=0"`
	Status     string                  `json:"status"     validate:"omitempty,oneof=pending processing completed cancelled"`
	SedeID     *uint                   `json:"sedeId"     validate:"omitempty,gt=0"`
	Items      []SalesOrderItemRequest `json:"items"      validate:"required,min=1,dive"`
}

// UpdateSalesOrderRequest touches header fields only; the item collection is
// not replaceable through update.
type UpdateSalesOrderRequest struct {
	CustomerID *uint   `json:"customerId" validate:"omitempty,gt=0"`
	Status     *string `json:"status"     validate:"omitempty,oneof=pending processing completed cancelled"`
	SedeID     *uint   `json:"sedeId"     validate:"omitempty,gt=0"`
}

type SalesOrderItemResponse struct {
	ID              uint            `json:"id"`
	OrderID         uint            `json:"orderId"`
	ProductID       uint            `json:"productId"`
	Quantity        int             `json:"quantity"`
	UnitPriceAtSale decimal.Decimal `json:"unitPriceAtSale"`
}

type SalesOrderResponse struct {
	ID          uint                     `json:"id"`
	CustomerID  uint                     `json:"customerId"`
	OrderDate   *string                  `json:"orderDate"`
	TotalAmount decimal.Decimal          `json:"totalAmount"`
	Status      string                   `json:"status"`
	SedeID      *uint                    `json:"sedeId"`
	Items       []SalesOrderItemResponse `json:"items,omitempty"`
	CreatedAt   *string                  `json:"createdAt"`
	UpdatedAt   *string                  `json:"updatedAt"`
}

// ─── Purchase orders ─────────────────────────────────────────────────────────

type PurchaseOrderItemRequest struct {
	ProductID          uint            `json:"productId"          validate:"required,gt=0"`
	Quantity           int             `json:"quantity"           validate:"required,gt=0"`
	UnitCostAtPurchase decimal.Decimal `json:"unitCostAtPurchase" validate:"required,gt=0"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID           uint                       `json:"supplierId" validate:"required,gt=0"`
	Status               string                     `json:"status"     validate:"omitempty,oneof=pending processing ordered shipped received completed cancelled"`
	SedeID               *uint                      `json:"sedeId"     validate:"omitempty,gt=0"`
	ExpectedDeliveryDate *string                    `json:"expectedDeliveryDate"`
	Items                []PurchaseOrderItemRequest `json:"items"      validate:"required,min=1,dive"`
}

type UpdatePurchaseOrderRequest struct {
	SupplierID           *uint   `json:"supplierId" validate:"omitempty,gt=0"`
	Status               *string `json:"status"     validate:"omitempty,oneof=pending processing ordered shipped received completed cancelled"`
	SedeID               *uint   `json:"sedeId"     validate:"omitempty,gt=0"`
	ExpectedDeliveryDate *string `json:"expectedDeliveryDate"`
}

type PurchaseOrderItemResponse struct {
	ID                 uint            `json:"id"`
	OrderID            uint            `json:"orderId"`
	ProductID          uint            `json:"productId"`
	Quantity           int             `json:"quantity"`
	UnitCostAtPurchase decimal.Decimal `json:"unitCostAtPurchase"`
}

type PurchaseOrderResponse struct {
	ID                   uint                        `json:"id"`
	SupplierID           uint                        `json:"supplierId"`
	OrderDate            *string                     `json:"orderDate"`
	ExpectedDeliveryDate *string                     `json:"expectedDeliveryDate"`
	TotalAmount          decimal.Decimal             `json:"totalAmount"`
	Status               string                      `json:"status"`
	SedeID               *uint                       `json:"sedeId"`
	Items                []PurchaseOrderItemResponse `json:"items,omitempty"`
	CreatedAt            *string                     `json:"createdAt"`
	UpdatedAt            *string                     `json:"updatedAt"`
}
