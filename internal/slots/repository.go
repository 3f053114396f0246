package slots

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	GetAll(ctx context.Context) ([]DateTimeSlot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]DateTimeSlot, error) {
	var records []DateTimeSlot
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
