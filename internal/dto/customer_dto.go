package dto

type CreateCustomerRequest struct {
	FirstName string  `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string  `json:"lastName"  validate:"required,min=1,max=100"`
	Email     string  `json:"email"     validate:"required,email"`
	Phone     *string `json:"phone"     validate:"omitempty,max=30"`
	Address   *string `json:"address"   validate:"omitempty,max=255"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Phone     *string `json:"phone"     validate:"omitempty,max=30"`
	Address   *string `json:"address"   validate:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}
