package shows

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"cineshow/internal/movies"

	"github.com/google/uuid"
)

// SeatOccupied is the status marker stored for a reserved seat label.
const SeatOccupied = "occupied"

// SeatMap maps seat labels to their occupancy status, persisted as JSONB.
type SeatMap map[string]string

func (m SeatMap) Value() (driver.Value, error) {
	if m == nil {
		m = SeatMap{}
	}
	return json.Marshal(m)
}

func (m *SeatMap) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan SeatMap: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, m)
}

// IsOccupied reports whether a seat label carries the occupied marker.
func (m SeatMap) IsOccupied(seat string) bool {
	return m[seat] == SeatOccupied
}

// Conflicts returns the subset of the requested labels already occupied.
func (m SeatMap) Conflicts(seats []string) []string {
	var conflicts []string
	for _, seat := range seats {
		if m.IsOccupied(seat) {
			conflicts = append(conflicts, seat)
		}
	}
	return conflicts
}

// Occupy marks every given label occupied and returns the mutated map.
// The receiver may be nil.
func (m SeatMap) Occupy(seats []string) SeatMap {
	if m == nil {
		m = SeatMap{}
	}
	for _, seat := range seats {
		m[seat] = SeatOccupied
	}
	return m
}

// Release removes the occupancy marker for every given label.
func (m SeatMap) Release(seats []string) {
	for _, seat := range seats {
		delete(m, seat)
	}
}

// Show is a single scheduled screening with its own price and seat state
type Show struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	MovieID       uuid.UUID `json:"movie_id" gorm:"type:uuid;not null"`
	ShowDateTime  time.Time `json:"showDateTime" gorm:"not null"`
	ShowPrice     float64   `json:"showPrice" gorm:"not null;check:show_price >= 0"`
	OccupiedSeats SeatMap   `json:"occupiedSeats" gorm:"type:jsonb;default:'{}'"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Movie *movies.Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Show
func (Show) TableName() string {
	return "shows"
}
