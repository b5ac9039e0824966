package service

import (
	"context"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"gorm.io/gorm"
)

// ProductService is also the response mapping layer for products: every row
// that crosses the API boundary is enriched with stockBySede and the derived
// total stock. The list path uses ONE batched association query regardless
// of result size; it must never regress to a per-row lookup.
type ProductService interface {
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	repo      repository.ProductRepository
	assocRepo repository.AssociationRepository
	assoc     AssociationService
}

func NewProductService(repo repository.ProductRepository, assocRepo repository.AssociationRepository, assoc AssociationService) ProductService {
	return &productService{repo: repo, assocRepo: assocRepo, assoc: assoc}
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.FromDB(err, "")
	}

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	stockMap, err := s.assoc.StockForProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i], stockMap[products[i].ID]))
	}
	return result, nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.FromDB(err, "Product not found")
	}
	stocks, err := s.assoc.StockForProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(p, stocks)
	return &resp, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if req.SedeID != nil && req.InitialStockAtSede == nil {
		return nil, apierror.Validation("initialStockAtSede is required when sedeId is provided",
			apierror.FieldError{Path: "initialStockAtSede", Message: "required with sedeId"})
	}

	p := &model.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		UnitPrice:   req.Price,
		Description: req.Description,
		Category:    req.Category,
	}

	// Product and its initial stock association commit together.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, p); err != nil {
			return err
		}
		if req.SedeID != nil {
			return s.assocRepo.Create(ctx, tx, &model.SedeProductAssociation{
				SedeID:      *req.SedeID,
				ProductID:   p.ID,
				StockAtSede: *req.InitialStockAtSede,
			})
		}
		return nil
	})
	if txErr != nil {
		e := apierror.FromDB(txErr, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("A product with this SKU already exists")
		}
		return nil, e
	}

	return s.Get(ctx, p.ID)
}

func (s *productService) Update(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.SKU != nil {
		fields["sku"] = *req.SKU
	}
	if req.Price != nil {
		fields["unit_price"] = *req.Price
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("No fields to update")
	}

	rows, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		e := apierror.FromDB(err, "")
		if e.Kind == apierror.KindConflict {
			return nil, apierror.Conflict("A product with this SKU already exists")
		}
		return nil, e
	}
	if rows == 0 {
		return nil, apierror.NotFound("Product not found for update")
	}
	return s.Get(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apierror.FromDB(err, "")
	}
	if rows == 0 {
		return apierror.NotFound("Product not found for deletion")
	}
	return nil
}

func toProductResponse(p *model.Product, stocks []dto.SedeStock) dto.ProductResponse {
	if stocks == nil {
		stocks = []dto.SedeStock{}
	}
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Price:       p.UnitPrice,
		Description: p.Description,
		Category:    p.Category,
		CreatedAt:   isoTime(p.CreatedAt),
		UpdatedAt:   isoTime(p.UpdatedAt),
		StockBySede: stocks,
		Stock:       SumStock(stocks),
	}
}
