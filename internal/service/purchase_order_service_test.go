package service

import (
	"errors"
	"testing"
	"time"

	"inventario/internal/apierror"
	"inventario/internal/dto"
	"inventario/internal/model"
	"inventario/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPurchaseOrderSvc(db *gorm.DB) PurchaseOrderService {
	return NewPurchaseOrderService(repository.NewPurchaseOrderRepository(db))
}

// Purchase order creation persists its line items in the same transaction
// as the header, exactly like sales orders.
func TestCreatePurchaseOrder_PersistsItemsWithHeader(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Acme")
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newPurchaseOrderSvc(db)

	created, err := svc.Create(ctxBg(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: p.ID, Quantity: 3, UnitCostAtPurchase: decimal.RequireFromString("4.00")},
		},
	})
	require.NoError(t, err)
	assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("12.00")))
	assert.Equal(t, model.OrderStatusPending, created.Status)

	got, err := svc.Get(ctxBg(), created.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
}

func TestCreatePurchaseOrder_RollsBackOnItemFailure(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Acme")
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")

	err := db.Callback().Create().Before("gorm:create").Register("test:fail_purchase_item", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*model.PurchaseOrderItem); ok {
			tx.AddError(errors.New("simulated insert failure"))
		}
	})
	require.NoError(t, err)

	svc := newPurchaseOrderSvc(db)
	_, createErr := svc.Create(ctxBg(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: p.ID, Quantity: 1, UnitCostAtPurchase: decimal.RequireFromString("4.00")},
		},
	})
	require.Error(t, createErr)

	var headers int64
	require.NoError(t, db.Model(&model.PurchaseOrder{}).Count(&headers).Error)
	assert.Zero(t, headers)
}

func TestCreatePurchaseOrder_ExpectedDeliveryDateFormats(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Acme")
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newPurchaseOrderSvc(db)

	for _, raw := range []string{"2026-09-15", "2026-09-15T00:00:00Z"} {
		resp, err := svc.Create(ctxBg(), dto.CreatePurchaseOrderRequest{
			SupplierID:           supplier.ID,
			ExpectedDeliveryDate: strPtr(raw),
			Items: []dto.PurchaseOrderItemRequest{
				{ProductID: p.ID, Quantity: 1, UnitCostAtPurchase: decimal.RequireFromString("4.00")},
			},
		})
		require.NoError(t, err, "input %q", raw)
		require.NotNil(t, resp.ExpectedDeliveryDate)
		assert.Equal(t, "2026-09-15T00:00:00Z", *resp.ExpectedDeliveryDate)
	}

	_, err := svc.Create(ctxBg(), dto.CreatePurchaseOrderRequest{
		SupplierID:           supplier.ID,
		ExpectedDeliveryDate: strPtr("15/09/2026"),
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: p.ID, Quantity: 1, UnitCostAtPurchase: decimal.RequireFromString("4.00")},
		},
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.AsError(err).Kind)
}

func TestParseDeliveryDate(t *testing.T) {
	got, err := parseDeliveryDate(strPtr("2026-01-31"))
	require.Nil(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), got.UTC())

	got, err = parseDeliveryDate(nil)
	require.Nil(t, err)
	assert.Nil(t, got)

	got, err = parseDeliveryDate(strPtr(""))
	require.Nil(t, err)
	assert.Nil(t, got)

	_, err = parseDeliveryDate(strPtr("not-a-date"))
	require.NotNil(t, err)
	assert.Equal(t, apierror.KindValidation, err.Kind)
}

func TestUpdatePurchaseOrder_StatusEnumIncludesLogisticsStates(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Acme")
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newPurchaseOrderSvc(db)

	created, err := svc.Create(ctxBg(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: p.ID, Quantity: 1, UnitCostAtPurchase: decimal.RequireFromString("4.00")},
		},
	})
	require.NoError(t, err)

	for _, status := range []string{
		model.OrderStatusOrdered,
		model.OrderStatusShipped,
		model.OrderStatusReceived,
		model.OrderStatusCompleted,
	} {
		updated, err := svc.Update(ctxBg(), created.ID, dto.UpdatePurchaseOrderRequest{Status: &status})
		require.NoError(t, err, "status %q", status)
		assert.Equal(t, status, updated.Status)
	}
}

func TestDeletePurchaseOrder_RemovesItemsWithHeader(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Acme")
	p := seedProduct(t, db, "Widget", "WID-1", "10.00")
	svc := newPurchaseOrderSvc(db)

	created, err := svc.Create(ctxBg(), dto.CreatePurchaseOrderRequest{
		SupplierID: supplier.ID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: p.ID, Quantity: 2, UnitCostAtPurchase: decimal.RequireFromString("4.00")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctxBg(), created.ID))

	var headers, items int64
	require.NoError(t, db.Model(&model.PurchaseOrder{}).Count(&headers).Error)
	require.NoError(t, db.Model(&model.PurchaseOrderItem{}).Count(&items).Error)
	assert.Zero(t, headers)
	assert.Zero(t, items)
}
