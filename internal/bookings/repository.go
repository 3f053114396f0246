package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cineshow/internal/shows"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Concurrency-safe booking creation: seat occupancy and the booking
	// record commit in one transaction or not at all.
	CreateWithSeatReservation(ctx context.Context, booking *Booking) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]Booking, error)

	// DeleteWithSeatRelease removes the booking and frees its seat labels on
	// the show inside one transaction.
	DeleteWithSeatRelease(ctx context.Context, booking *Booking) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithSeatReservation locks the show row, rejects any seat already
// occupied, marks the requested seats occupied and inserts the booking.
// Exactly one of two concurrent overlapping requests can succeed.
func (r *repository) CreateWithSeatReservation(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var show shows.Show
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", booking.ShowID).
			First(&show).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shows.ErrShowNotFound
			}
			return fmt.Errorf("failed to lock show: %w", err)
		}

		if conflicts := show.OccupiedSeats.Conflicts(booking.Seats); len(conflicts) > 0 {
			return fmt.Errorf("%w: %s", ErrSeatConflict, strings.Join(conflicts, ", "))
		}

		updated := show.OccupiedSeats.Occupy(booking.Seats)
		err = tx.Model(&shows.Show{}).
			Where("id = ?", show.ID).
			Update("occupied_seats", updated).Error
		if err != nil {
			return fmt.Errorf("failed to update seat map: %w", err)
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("Show").
		Preload("Show.Movie").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID string) ([]Booking, error) {
	var records []Booking
	err := r.db.WithContext(ctx).
		Preload("Show").
		Preload("Show.Movie").
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) DeleteWithSeatRelease(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var show shows.Show
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", booking.ShowID).
			First(&show).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to lock show: %w", err)
		}

		// Show rows are never deleted in this core, but a missing row must
		// not strand the booking delete.
		if err == nil {
			show.OccupiedSeats.Release(booking.Seats)
			err = tx.Model(&shows.Show{}).
				Where("id = ?", show.ID).
				Update("occupied_seats", show.OccupiedSeats).Error
			if err != nil {
				return fmt.Errorf("failed to release seats: %w", err)
			}
		}

		result := tx.Where("id = ?", booking.ID).Delete(&Booking{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete booking: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrBookingNotFound
		}

		return nil
	})
}
