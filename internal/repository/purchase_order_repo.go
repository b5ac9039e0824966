package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

// PurchaseOrderRepository mirrors SalesOrderRepository: header and item
// writes are separate tx-scoped calls under one transaction.
type PurchaseOrderRepository interface {
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	FindItemsByOrder(ctx context.Context, orderID uint) ([]model.PurchaseOrderItem, error)

	CreateTx(ctx context.Context, tx *gorm.DB, o *model.PurchaseOrder) error
	CreateItemTx(ctx context.Context, tx *gorm.DB, item *model.PurchaseOrderItem) error
	DeleteItemsTx(ctx context.Context, tx *gorm.DB, orderID uint) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uint) (int64, error)

	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)

	DB() *gorm.DB
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) DB() *gorm.DB { return r.db }

func (r *purchaseOrderRepo) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var o model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *purchaseOrderRepo) FindItemsByOrder(ctx context.Context, orderID uint) ([]model.PurchaseOrderItem, error) {
	var items []model.PurchaseOrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *purchaseOrderRepo) CreateTx(ctx context.Context, tx *gorm.DB, o *model.PurchaseOrder) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *purchaseOrderRepo) CreateItemTx(ctx context.Context, tx *gorm.DB, item *model.PurchaseOrderItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *purchaseOrderRepo) DeleteItemsTx(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return tx.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.PurchaseOrderItem{}).Error
}

func (r *purchaseOrderRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	res := tx.WithContext(ctx).Delete(&model.PurchaseOrder{}, id)
	return res.RowsAffected, res.Error
}

func (r *purchaseOrderRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
