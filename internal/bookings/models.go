package bookings

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"cineshow/internal/shows"

	"github.com/google/uuid"
)

// SeatList stores the reserved seat labels as a JSONB column
type SeatList []string

func (s SeatList) Value() (driver.Value, error) {
	if s == nil {
		s = SeatList{}
	}
	return json.Marshal(s)
}

func (s *SeatList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan SeatList: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, s)
}

// Booking is a persisted record of seats reserved by a user for a show.
// The user reference is denormalized (name + external identifier); there is
// no user table behind it.
type Booking struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	UserName    string    `json:"user_name" gorm:"not null;size:255"`
	UserID      string    `json:"user_id" gorm:"not null;size:255"`
	ShowID      uuid.UUID `json:"show_id" gorm:"type:uuid;not null;index"`
	Seats       SeatList  `json:"seats" gorm:"type:jsonb;not null"`
	TotalPrice  float64   `json:"total_price" gorm:"not null;check:total_price >= 0"`
	BookingDate time.Time `json:"booking_date" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Show *shows.Show `json:"show,omitempty" gorm:"foreignKey:ShowID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
