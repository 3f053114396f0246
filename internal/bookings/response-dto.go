package bookings

import (
	"time"

	"cineshow/internal/shows"
)

type BookingResponse struct {
	ID          string      `json:"id"`
	User        BookingUser `json:"user"`
	Show        *shows.Show `json:"show,omitempty"`
	Seats       []string    `json:"seats"`
	TotalPrice  float64     `json:"totalPrice"`
	BookingDate time.Time   `json:"bookingDate"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ToResponse converts a Booking into its wire representation
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID: b.ID.String(),
		User: BookingUser{
			Name:   b.UserName,
			UserID: b.UserID,
		},
		Show:        b.Show,
		Seats:       b.Seats,
		TotalPrice:  b.TotalPrice,
		BookingDate: b.BookingDate,
		CreatedAt:   b.CreatedAt,
	}
}
