package bookings

import "time"

// BookingUser is the denormalized user reference carried on a booking
type BookingUser struct {
	Name   string `json:"name" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type CreateBookingRequest struct {
	User        BookingUser `json:"user" validate:"required"`
	Show        string      `json:"show" validate:"required,uuid"`
	Seats       []string    `json:"seats" validate:"required,min=1,unique,dive,required"`
	TotalPrice  float64     `json:"totalPrice" validate:"gte=0"`
	BookingDate *time.Time  `json:"bookingDate"`
}
