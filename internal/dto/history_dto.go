package dto

// CreateTransactionHistoryRequest appends one audit row. There is no update
// or delete counterpart.
type CreateTransactionHistoryRequest struct {
	TransactionType string  `json:"transactionType" validate:"required,min=1,max=50"`
	TransactionID   *uint   `json:"transactionId"   validate:"omitempty,gt=0"`
	EntityTable     *string `json:"entityTable"     validate:"omitempty,max=50"`
	UserID          *uint   `json:"userId"          validate:"omitempty,gt=0"`
	Details         *string `json:"details"         validate:"omitempty,max=1000"`
}

type TransactionHistoryResponse struct {
	ID              uint    `json:"id"`
	TransactionType string  `json:"transactionType"`
	TransactionID   *uint   `json:"transactionId"`
	EntityTable     *string `json:"entityTable"`
	UserID          *uint   `json:"userId"`
	Details         *string `json:"details"`
	TransactionDate *string `json:"transactionDate"`
}
