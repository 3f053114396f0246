package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSeatConflict is returned when any requested seat is already occupied.
	ErrSeatConflict = errors.New("seat already occupied")

	// ErrNotBookingOwner is returned when the supplied user id does not match
	// the booking's stored user id.
	ErrNotBookingOwner = errors.New("booking does not belong to user")

	// ErrAmbiguousDelete is returned by the legacy delete-by-user route when
	// the user holds more than one booking and intent cannot be inferred.
	ErrAmbiguousDelete = errors.New("user has multiple bookings, delete by booking id")
)
