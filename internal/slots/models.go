package slots

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SlotEntry is one screening time attached to a calendar date
type SlotEntry struct {
	Time   time.Time `json:"time"`
	ShowID string    `json:"showId"`
}

// SlotEntryList stores a date's screening times as a JSONB column
type SlotEntryList []SlotEntry

func (s SlotEntryList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SlotEntryList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan SlotEntryList: expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, s)
}

// DateTimeSlot groups the screening times available on one calendar date
type DateTimeSlot struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Date      string        `json:"date" gorm:"not null;size:20;index"`
	Slots     SlotEntryList `json:"slots" gorm:"type:jsonb;default:'[]'"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the table name for DateTimeSlot
func (DateTimeSlot) TableName() string {
	return "date_time_slots"
}
