package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationTypeBookingCancelled NotificationType = "BOOKING_CANCELLED"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// BookingNotification is the event published when a booking is confirmed or
// cancelled. Recipients are addressed by the booking's denormalized user
// reference; there is no user table to look anything up in.
type BookingNotification struct {
	ID   uuid.UUID        `json:"id"`
	Type NotificationType `json:"type"`

	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`

	BookingID  string   `json:"booking_id"`
	ShowID     string   `json:"show_id"`
	Seats      []string `json:"seats"`
	TotalPrice float64  `json:"total_price"`

	Status    NotificationStatus `json:"status"`
	LastError *string            `json:"last_error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewBookingNotification builds a pending notification for a booking event
func NewBookingNotification(t NotificationType, userID, userName, bookingID, showID string, seats []string, totalPrice float64) *BookingNotification {
	now := time.Now()
	return &BookingNotification{
		ID:         uuid.New(),
		Type:       t,
		UserID:     userID,
		UserName:   userName,
		BookingID:  bookingID,
		ShowID:     showID,
		Seats:      seats,
		TotalPrice: totalPrice,
		Status:     NotificationStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ToJSON serializes the notification for the wire
func (n *BookingNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// FromJSON deserializes a notification from the wire
func FromJSON(data []byte) (*BookingNotification, error) {
	var n BookingNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// GetPartitionKey routes all of a user's notifications to one partition so
// delivery order per user is stable
func (n *BookingNotification) GetPartitionKey() string {
	return n.UserID
}
