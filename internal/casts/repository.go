package casts

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Cast, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Cast, error) {
	var records []Cast
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&records).Error
	return records, err
}
