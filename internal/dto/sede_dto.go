package dto

type CreateSedeRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

type UpdateSedeRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=100"`
	Address *string `json:"address" validate:"omitempty,max=255"`
}

type SedeResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
}
