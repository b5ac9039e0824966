package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

// TransactionHistoryRepository is append-only: rows are created and read,
// never updated or deleted.
type TransactionHistoryRepository interface {
	List(ctx context.Context) ([]model.TransactionHistory, error)
	FindByID(ctx context.Context, id uint) (*model.TransactionHistory, error)
	Create(ctx context.Context, h *model.TransactionHistory) error
}

type historyRepo struct{ db *gorm.DB }

func NewTransactionHistoryRepository(db *gorm.DB) TransactionHistoryRepository {
	return &historyRepo{db: db}
}

func (r *historyRepo) List(ctx context.Context) ([]model.TransactionHistory, error) {
	var rows []model.TransactionHistory
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *historyRepo) FindByID(ctx context.Context, id uint) (*model.TransactionHistory, error) {
	var h model.TransactionHistory
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *historyRepo) Create(ctx context.Context, h *model.TransactionHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}
