package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
)

type CustomerService interface {
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id uint) (*dto.CustomerResponse, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uint) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		result = append(result, toCustomerResponse(&customers[i]))
	}
	return result, nil
}

func (s *customerService) Get(ctx context.Context, id uint) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "Customer not found")
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		e := apierror.FromDB(err, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("A customer with this email already exists")
		}
		return nil, e
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

func (s *customerService) Update(ctx context.Context, id uint, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("No fields to update")
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		e := apierror.FromDB(err, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("A customer with this email already exists")
		}
		return nil, e
	}
	if rows == 0 {
		return nil, apierror.NotFound("Customer not found for update")
	}
	return s.Get(ctx, id)
}

func (s *customerService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apierror.FromDB(err, "")
	}
	if rows == 0 {
		return apierror.NotFound("Customer not found for deletion")
	}
	return nil
}

func toCustomerResponse(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: isoTime(c.CreatedAt),
		UpdatedAt: isoTime(c.UpdatedAt),
	}
}
