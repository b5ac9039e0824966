package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

// SalesOrderRepository splits header and item writes so the service layer
// can run them inside one transaction and the rollback boundary is explicit.
type SalesOrderRepository interface {
	List(ctx context.Context) ([]model.SalesOrder, error)
	FindByID(ctx context.Context, id uint) (*model.SalesOrder, error)
	FindItemsByOrder(ctx context.Context, orderID uint) ([]model.SalesOrderItem, error)

	// Used inside transactions — callers must pass the tx instance.
	CreateTx(ctx context.Context, tx *gorm.DB, o *model.SalesOrder) error
	CreateItemTx(ctx context.Context, tx *gorm.DB, item *model.SalesOrderItem) error
	DeleteItemsTx(ctx context.Context, tx *gorm.DB, orderID uint) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uint) (int64, error)

	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type salesOrderRepo struct{ db *gorm.DB }

func NewSalesOrderRepository(db *gorm.DB) SalesOrderRepository { return &salesOrderRepo{db: db} }

func (r *salesOrderRepo) DB() *gorm.DB { return r.db }

func (r *salesOrderRepo) List(ctx context.Context) ([]model.SalesOrder, error) {
	var orders []model.SalesOrder
	err := r.db.WithContext(ctx).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *salesOrderRepo) FindByID(ctx context.Context, id uint) (*model.SalesOrder, error) {
	var o model.SalesOrder
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *salesOrderRepo) FindItemsByOrder(ctx context.Context, orderID uint) ([]model.SalesOrderItem, error) {
	var items []model.SalesOrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *salesOrderRepo) CreateTx(ctx context.Context, tx *gorm.DB, o *model.SalesOrder) error {
	return tx.WithContext(ctx).Create(o).Error
}

func (r *salesOrderRepo) CreateItemTx(ctx context.Context, tx *gorm.DB, item *model.SalesOrderItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *salesOrderRepo) DeleteItemsTx(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return tx.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.SalesOrderItem{}).Error
}

func (r *salesOrderRepo) DeleteTx(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	res := tx.WithContext(ctx).Delete(&model.SalesOrder{}, id)
	return res.RowsAffected, res.Error
}

func (r *salesOrderRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.SalesOrder{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
