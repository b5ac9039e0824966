package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
)

type SedeService interface {
	List(ctx context.Context) ([]dto.SedeResponse, error)
	Get(ctx context.Context, id uint) (*dto.SedeResponse, error)
	Create(ctx context.Context, req dto.CreateSedeRequest) (*dto.SedeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSedeRequest) (*dto.SedeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type sedeService struct {
	repo repository.SedeRepository
}

func NewSedeService(repo repository.SedeRepository) SedeService {
	return &sedeService{repo: repo}
}

func (s *sedeService) List(ctx context.Context) ([]dto.SedeResponse, error) {
	sedes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.SedeResponse, 0, len(sedes))
	for i := range sedes {
		result = append(result, toSedeResponse(&sedes[i]))
	}
	return result, nil
}

func (s *sedeService) Get(ctx context.Context, id uint) (*dto.SedeResponse, error) {
	sede, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "Sede not found")
	}
	resp := toSedeResponse(sede)
	return &resp, nil
}

func (s *sedeService) Create(ctx context.Context, req dto.CreateSedeRequest) (*dto.SedeResponse, error) {
	sede := &model.Sede{Name: req.Name, Address: req.Address}
	if err := s.repo.Create(ctx, sede); err != nil {
		return nil, apierror.FromDB(err, "")
	}
	resp := toSedeResponse(sede)
	return &resp, nil
}

func (s *sedeService) Update(ctx context.Context, id uint, req dto.UpdateSedeRequest) (*dto.SedeResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("No fields to update")
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	if rows == 0 {
		return nil, apierror.NotFound("Sede not found for update")
	}
	return s.Get(ctx, id)
}

func (s *sedeService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apierror.FromDB(err, "")
	}
	if rows == 0 {
		return apierror.NotFound("Sede not found for deletion")
	}
	return nil
}

func toSedeResponse(s *model.Sede) dto.SedeResponse {
	return dto.SedeResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		CreatedAt: isoTime(s.CreatedAt),
		UpdatedAt: isoTime(s.UpdatedAt),
	}
}
