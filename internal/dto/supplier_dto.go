package dto

type CreateSupplierRequest struct {
	Name          string  `json:"name"          validate:"required,min=1,max=100"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=100"`
	Phone         *string `json:"phone"         validate:"omitempty,max=30"`
	Email         *string `json:"email"         validate:"omitempty,email"`
	Address       *string `json:"address"       validate:"omitempty,max=255"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name"          validate:"omitempty,min=1,max=100"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=100"`
	Phone         *string `json:"phone"         validate:"omitempty,max=30"`
	Email         *string `json:"email"         validate:"omitempty,email"`
	Address       *string `json:"address"       validate:"omitempty,max=255"`
}

type SupplierResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Address       *string `json:"address"`
	CreatedAt     *string `json:"createdAt"`
	UpdatedAt     *string `json:"updatedAt"`
}
