package dto

type CreateAssociationRequest struct {
	SedeID      uint `json:"sedeId"      validate:"required,gt=0"`
	ProductID   uint `json:"productId"   validate:"required,gt=0"`
	StockAtSede *int `json:"stockAtSede" validate:"required,min=0"`
}

type AssociationResponse struct {
	SedeID      uint `json:"sedeId"`
	ProductID   uint `json:"productId"`
	StockAtSede int  `json:"stockAtSede"`
}

// SedeWithStockResponse is a sede row joined with the stock the sede holds
// for one product (GET /api/sede-product-associations/product/:id).
type SedeWithStockResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address"`
	StockAtSede int     `json:"stockAtSede"`
}
