package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

// AssociationRepository maintains the (sede × product) → stock relation.
type AssociationRepository interface {
	// Create inserts a new association row. The composite primary key makes a
	// duplicate (sede, product) pair fail with gorm.ErrDuplicatedKey.
	Create(ctx context.Context, tx *gorm.DB, a *model.SedeProductAssociation) error
	FindByProduct(ctx context.Context, productID uint) ([]model.SedeProductAssociation, error)
	// FindByProducts is the batched form used to avoid N+1 queries when
	// mapping product lists. Products without associations are simply absent
	// from the result; callers treat a missing key as an empty slice.
	FindByProducts(ctx context.Context, productIDs []uint) (map[uint][]model.SedeProductAssociation, error)
	// SedesWithStock joins sede rows with the stock each holds for a product.
	SedesWithStock(ctx context.Context, productID uint) ([]model.Sede, map[uint]int, error)
}

type associationRepo struct{ db *gorm.DB }

func NewAssociationRepository(db *gorm.DB) AssociationRepository {
	return &associationRepo{db: db}
}

func (r *associationRepo) Create(ctx context.Context, tx *gorm.DB, a *model.SedeProductAssociation) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(a).Error
}

func (r *associationRepo) FindByProduct(ctx context.Context, productID uint) ([]model.SedeProductAssociation, error) {
	var rows []model.SedeProductAssociation
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sede_id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *associationRepo) FindByProducts(ctx context.Context, productIDs []uint) (map[uint][]model.SedeProductAssociation, error) {
	result := make(map[uint][]model.SedeProductAssociation, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}
	var rows []model.SedeProductAssociation
	err := r.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Order("sede_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.ProductID] = append(result[row.ProductID], row)
	}
	return result, nil
}

func (r *associationRepo) SedesWithStock(ctx context.Context, productID uint) ([]model.Sede, map[uint]int, error) {
	rows, err := r.FindByProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return []model.Sede{}, map[uint]int{}, nil
	}

	stockBySede := make(map[uint]int, len(rows))
	sedeIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		stockBySede[row.SedeID] = row.StockAtSede
		sedeIDs = append(sedeIDs, row.SedeID)
	}

	var sedes []model.Sede
	err = r.db.WithContext(ctx).Where("id IN ?", sedeIDs).Order("id ASC").Find(&sedes).Error
	if err != nil {
		return nil, nil, err
	}
	return sedes, stockBySede, nil
}
