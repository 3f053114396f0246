package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cineshow/internal/notifications"
	"cineshow/internal/shows"
	"cineshow/pkg/cache"
	"cineshow/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service interface defines the contract for booking business logic
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID uuid.UUID, userID string) error
	DeleteUserBooking(ctx context.Context, userID string) error
}

type service struct {
	repo     Repository
	claims   *AtomicSeatClaims
	claimTTL time.Duration
	cache    cache.Service
	notifier notifications.Producer
	log      *logger.Logger
}

// NewService creates a new booking service instance. claims, cacheService and
// notifier may each be nil; the database transaction alone upholds the
// no-double-booking invariant.
func NewService(repo Repository, claims *AtomicSeatClaims, claimTTL time.Duration, cacheService cache.Service, notifier notifications.Producer) Service {
	return &service{
		repo:     repo,
		claims:   claims,
		claimTTL: claimTTL,
		cache:    cacheService,
		notifier: notifier,
		log:      logger.GetDefault(),
	}
}

// CreateBooking reserves the requested seats on the show and records the
// booking. Both writes commit in a single transaction; a seat that is already
// occupied fails the whole request with ErrSeatConflict and nothing persists.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	showID, err := uuid.Parse(req.Show)
	if err != nil {
		return nil, fmt.Errorf("invalid show ID: %w", err)
	}

	// Fast path: claim the seat labels in Redis so concurrent attempts for
	// the same seats fail before reaching the database. A Redis outage
	// degrades to DB-only locking.
	claimed := false
	if s.claims != nil {
		err := s.claims.ClaimSeats(ctx, showID.String(), req.User.UserID, req.Seats, s.claimTTL)
		switch {
		case err == nil:
			claimed = true
		case errors.Is(err, ErrSeatConflict):
			s.log.LogSeatConflict(ctx, showID.String(), req.User.UserID, req.Seats)
			return nil, err
		default:
			s.log.WithError(err).Warn("seat claim fast path unavailable, relying on database lock")
		}
	}

	bookingDate := time.Now()
	if req.BookingDate != nil {
		bookingDate = *req.BookingDate
	}

	booking := &Booking{
		UserName:    req.User.Name,
		UserID:      req.User.UserID,
		ShowID:      showID,
		Seats:       req.Seats,
		TotalPrice:  req.TotalPrice,
		BookingDate: bookingDate,
	}

	if err := s.repo.CreateWithSeatReservation(ctx, booking); err != nil {
		if claimed {
			s.releaseClaims(ctx, showID.String(), req.Seats)
		}
		if errors.Is(err, ErrSeatConflict) {
			s.log.LogSeatConflict(ctx, showID.String(), req.User.UserID, req.Seats)
		}
		return nil, err
	}

	s.invalidateShowCache(ctx)
	s.log.LogBookingCreated(ctx, booking.ID.String(), showID.String(), req.User.UserID, req.Seats)
	s.publish(ctx, notifications.NotificationTypeBookingConfirmed, booking)

	// Reload with Show and Movie inlined for the response
	created, err := s.repo.GetByID(ctx, booking.ID)
	if err != nil {
		// The booking is committed; fall back to the bare record
		created = booking
	}

	resp := created.ToResponse()
	return &resp, nil
}

// GetUserBookings returns every booking whose stored user identifier matches,
// each with its Show and that Show's Movie inlined.
func (s *service) GetUserBookings(ctx context.Context, userID string) ([]BookingResponse, error) {
	records, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}

	responses := make([]BookingResponse, 0, len(records))
	for i := range records {
		responses = append(responses, records[i].ToResponse())
	}
	return responses, nil
}

// DeleteBooking removes one booking by its identifier. The supplied user id
// must match the booking's stored user id. The booking's seats are released
// on the show in the same transaction.
func (s *service) DeleteBooking(ctx context.Context, bookingID uuid.UUID, userID string) error {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.UserID != userID {
		return ErrNotBookingOwner
	}

	return s.deleteAndRelease(ctx, booking)
}

// DeleteUserBooking keeps the original delete-by-user route alive for
// clients that predate booking identifiers. It refuses when the user holds
// more than one booking rather than picking an arbitrary record.
func (s *service) DeleteUserBooking(ctx context.Context, userID string) error {
	records, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user bookings: %w", err)
	}

	switch len(records) {
	case 0:
		return ErrBookingNotFound
	case 1:
		return s.deleteAndRelease(ctx, &records[0])
	default:
		return ErrAmbiguousDelete
	}
}

func (s *service) deleteAndRelease(ctx context.Context, booking *Booking) error {
	if err := s.repo.DeleteWithSeatRelease(ctx, booking); err != nil {
		return err
	}

	// Drop any live Redis claims so the labels are bookable again before the
	// claim TTL expires.
	s.releaseClaims(ctx, booking.ShowID.String(), booking.Seats)
	s.invalidateShowCache(ctx)
	s.log.LogBookingDeleted(ctx, booking.ID.String(), booking.UserID)
	s.publish(ctx, notifications.NotificationTypeBookingCancelled, booking)

	return nil
}

func (s *service) releaseClaims(ctx context.Context, showID string, seats []string) {
	if s.claims == nil {
		return
	}
	if _, err := s.claims.ReleaseSeats(ctx, showID, seats); err != nil {
		s.log.WithError(err).Warn("failed to release seat claims")
	}
}

func (s *service) invalidateShowCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, shows.ListCacheKey()); err != nil {
		s.log.WithError(err).Warn("failed to invalidate show listing cache")
	}
}

func (s *service) publish(ctx context.Context, t notifications.NotificationType, booking *Booking) {
	if s.notifier == nil {
		return
	}

	note := notifications.NewBookingNotification(
		t,
		booking.UserID,
		booking.UserName,
		booking.ID.String(),
		booking.ShowID.String(),
		booking.Seats,
		booking.TotalPrice,
	)

	// Fire and forget: the booking is already durable, a notification miss
	// must not fail the request.
	if err := s.notifier.PublishNotification(ctx, note); err != nil {
		s.log.WithError(err).Warn("failed to publish booking notification")
	}
}
