package casts

import (
	"time"

	"github.com/google/uuid"
)

// Cast is a standalone cast-member record served by the catalog
type Cast struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	ProfilePath string    `json:"profile_path" gorm:"not null;size:500"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for Cast
func (Cast) TableName() string {
	return "casts"
}
