package service

import (
	"testing"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductSvc(db *gorm.DB) ProductService {
	assocRepo := repository.NewAssociationRepository(db)
	return NewProductService(repository.NewProductRepository(db), assocRepo, NewAssociationService(assocRepo))
}

func TestCreateProduct_WithInitialStockAtSede(t *testing.T) {
	db := newTestDB(t)
	sede := seedSede(t, db, "Central")
	svc := newProductSvc(db)

	resp, err := svc.Create(ctxBg(), dto.CreateProductRequest{
		Name:               "Widget",
		SKU:                "WID-1",
		Price:              decimal.RequireFromString("10.00"),
		SedeID:             uintPtr(sede.ID),
		InitialStockAtSede: intPtr(15),
	})
	require.NoError(t, err)
	require.Len(t, resp.StockBySede, 1)
	assert.Equal(t, sede.ID, resp.StockBySede[0].SedeID)
	assert.Equal(t, 15, resp.StockBySede[0].Stock)
	assert.Equal(t, 15, resp.Stock)
}

func TestCreateProduct_SedeWithoutInitialStockRejected(t *testing.T) {
	db := newTestDB(t)
	sede := seedSede(t, db, "Central")
	svc := newProductSvc(db)

	_, err := svc.Create(ctxBg(), dto.CreateProductRequest{
		Name:   "Widget",
		SKU:    "WID-1",
		Price:  decimal.RequireFromString("10.00"),
		SedeID: uintPtr(sede.ID),
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.AsError(err).Kind)

	var count int64
	require.NoError(t, db.Model(&model.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateProduct_DuplicateSKUIsConflict(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newProductSvc(db)

	_, err := svc.Create(ctxBg(), dto.CreateProductRequest{
		Name:  "Other",
		SKU:   "WID-1",
		Price: decimal.RequireFromString("3.00"),
	})
	require.Error(t, err)
	e := apierror.AsError(err)
	assert.Equal(t, apierror.KindConflict, e.Kind)
	assert.Contains(t, e.Message, "SKU")
}

// The list path maps per-sede stock for every product and never returns a
// nil stockBySede, even for products with no associations.
func TestListProducts_AggregatesStockAcrossSedes(t *testing.T) {
	db := newTestDB(t)
	s1 := seedSede(t, db, "Central")
	s2 := seedSede(t, db, "Norte")
	p1 := seedProduct(t, db, "Widget", "WID-1", "10.00")
	p2 := seedProduct(t, db, "Gadget", "GAD-1", "5.00")
	seedAssociation(t, db, s1.ID, p1.ID, 10)
	seedAssociation(t, db, s2.ID, p1.ID, 7)

	svc := newProductSvc(db)
	products, err := svc.List(ctxBg())
	require.NoError(t, err)
	require.Len(t, products, 2)

	byID := map[uint]dto.ProductResponse{}
	for _, p := range products {
		byID[p.ID] = p
	}
	assert.Equal(t, 17, byID[p1.ID].Stock)
	assert.Len(t, byID[p1.ID].StockBySede, 2)
	assert.Equal(t, 0, byID[p2.ID].Stock)
	assert.NotNil(t, byID[p2.ID].StockBySede)
	assert.Empty(t, byID[p2.ID].StockBySede)
}

func TestGetProduct_MissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newProductSvc(db)

	_, err := svc.Get(ctxBg(), 999)
	require.Error(t, err)
	e := apierror.AsError(err)
	assert.Equal(t, apierror.KindNotFound, e.Kind)
	assert.Equal(t, "Product not found", e.Message)
}

func TestUpdateProduct_PartialUpdatePreservesOtherFields(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newProductSvc(db)

	price := decimal.RequireFromString("12.50")
	resp, err := svc.Update(ctxBg(), p.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(price))
	assert.Equal(t, "Widget", resp.Name)
	assert.Equal(t, "WID-1", resp.SKU)
}

func TestUpdateProduct_MissingIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newProductSvc(db)

	_, err := svc.Update(ctxBg(), 999, dto.UpdateProductRequest{Name: strPtr("X")})
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.AsError(err).Kind)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newProductSvc(db)

	require.NoError(t, svc.Delete(ctxBg(), p.ID))

	err := svc.Delete(ctxBg(), p.ID)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.AsError(err).Kind)
}
