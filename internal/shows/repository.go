package shows

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Show, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Show, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Show, error) {
	var records []Show
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Order("show_date_time ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Show, error) {
	var record Show
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
