package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"
)

// AssociationService maintains and queries per-sede stock. Total stock for a
// product is always the sum over its association rows, computed at read time.
type AssociationService interface {
	Create(ctx context.Context, req dto.CreateAssociationRequest) (*dto.AssociationResponse, error)
	StockForProduct(ctx context.Context, productID uint) ([]dto.SedeStock, error)
	StockForProducts(ctx context.Context, productIDs []uint) (map[uint][]dto.SedeStock, error)
	SedesForProduct(ctx context.Context, productID uint) ([]dto.SedeWithStockResponse, error)
}

type associationService struct {
	repo repository.AssociationRepository
}

func NewAssociationService(repo repository.AssociationRepository) AssociationService {
	return &associationService{repo: repo}
}

func (s *associationService) Create(ctx context.Context, req dto.CreateAssociationRequest) (*dto.AssociationResponse, error) {
	if req.StockAtSede == nil || *req.StockAtSede < 0 {
		return nil, apierror.Validation("Stock at sede must be zero or positive",
			apierror.FieldError{Path: "stockAtSede", Message: "must be >= 0"})
	}

	a := &model.SedeProductAssociation{
		SedeID:      req.SedeID,
		ProductID:   req.ProductID,
		StockAtSede: *req.StockAtSede,
	}
	if err := s.repo.Create(ctx, nil, a); err != nil {
		e := apierror.FromDB(err, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("An association for this sede and product already exists")
		}
		return nil, e
	}

	return &dto.AssociationResponse{
		SedeID:      a.SedeID,
		ProductID:   a.ProductID,
		StockAtSede: a.StockAtSede,
	}, nil
}

func (s *associationService) StockForProduct(ctx context.Context, productID uint) ([]dto.SedeStock, error) {
	rows, err := s.repo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	return toSedeStocks(rows), nil
}

func (s *associationService) StockForProducts(ctx context.Context, productIDs []uint) (map[uint][]dto.SedeStock, error) {
	byProduct, err := s.repo.FindByProducts(ctx, productIDs)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make(map[uint][]dto.SedeStock, len(byProduct))
	for productID, rows := range byProduct {
		result[productID] = toSedeStocks(rows)
	}
	return result, nil
}

func (s *associationService) SedesForProduct(ctx context.Context, productID uint) ([]dto.SedeWithStockResponse, error) {
	sedes, stockBySede, err := s.repo.SedesWithStock(ctx, productID)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}
	result := make([]dto.SedeWithStockResponse, 0, len(sedes))
	for _, sede := range sedes {
		result = append(result, dto.SedeWithStockResponse{
			ID:          sede.ID,
			Name:        sede.Name,
			Address:     sede.Address,
			StockAtSede: stockBySede[sede.ID],
		})
	}
	return result, nil
}

func toSedeStocks(rows []model.SedeProductAssociation) []dto.SedeStock {
	stocks := make([]dto.SedeStock, 0, len(rows))
	for _, row := range rows {
		stocks = append(stocks, dto.SedeStock{SedeID: row.SedeID, Stock: row.StockAtSede})
	}
	return stocks
}

// SumStock derives the total stock figure from per-sede rows. Exposed for
// the response mapping layer and its equivalence tests.
func SumStock(stocks []dto.SedeStock) int {
	total := 0
	for _, s := range stocks {
		total += s.Stock
	}
	return total
}
