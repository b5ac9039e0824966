package repository

import (
	"context"

	"inventario/internal/model"

	"gorm.io/gorm"
)

type SedeRepository interface {
	List(ctx context.Context) ([]model.Sede, error)
	FindByID(ctx context.Context, id uint) (*model.Sede, error)
	Create(ctx context.Context, s *model.Sede) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type sedeRepo struct{ db *gorm.DB }

func NewSedeRepository(db *gorm.DB) SedeRepository { return &sedeRepo{db: db} }

func (r *sedeRepo) List(ctx context.Context) ([]model.Sede, error) {
	var sedes []model.Sede
	err := r.db.WithContext(ctx).Order("id ASC").Find(&sedes).Error
	return sedes, err
}

func (r *sedeRepo) FindByID(ctx context.Context, id uint) (*model.Sede, error) {
	var s model.Sede
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sedeRepo) Create(ctx context.Context, s *model.Sede) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sedeRepo) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Sede{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *sedeRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Sede{}, id)
	return res.RowsAffected, res.Error
}
