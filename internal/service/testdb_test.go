package service

import (
	"context"
	"fmt"
	"testing"

	"inventario/internal/infra"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full schema.
// Each test gets its own named shared-cache database so gorm's connection
// pool sees one store per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

// ── Seed helpers ─────────────────────────────────────────────────────────────

func seedSede(t *testing.T, db *gorm.DB, name string) *model.Sede {
	t.Helper()
	s := &model.Sede{Name: name}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedProduct(t *testing.T, db *gorm.DB, name, sku string, price string) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, SKU: sku, UnitPrice: decimal.RequireFromString(price)}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *model.Customer {
	t.Helper()
	c := &model.Customer{FirstName: "Ana", LastName: "Diaz", Email: email}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) *model.Supplier {
	t.Helper()
	s := &model.Supplier{Name: name}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedAssociation(t *testing.T, db *gorm.DB, sedeID, productID uint, stock int) {
	t.Helper()
	require.NoError(t, db.Create(&model.SedeProductAssociation{
		SedeID: sedeID, ProductID: productID, StockAtSede: stock,
	}).Error)
}

// intPtr and friends keep the request literals in tests readable.
func intPtr(v int) *int       { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

func ctxBg() context.Context { return context.Background() }

// newSalesOrderRepoSvc builds the real repo+service pair over a test db.
func newSalesOrderRepoSvc(db *gorm.DB) (repository.SalesOrderRepository, SalesOrderService) {
	repo := repository.NewSalesOrderRepository(db)
	return repo, NewSalesOrderService(repo)
}
