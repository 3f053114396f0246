package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"cineshow/internal/notifications"
	"cineshow/internal/shows"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeRepository mimics the transactional repository in memory: seat
// occupancy and the booking record change together or not at all.
type fakeRepository struct {
	shows    map[uuid.UUID]*shows.Show
	bookings map[uuid.UUID]*Booking
	failWith error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		shows:    make(map[uuid.UUID]*shows.Show),
		bookings: make(map[uuid.UUID]*Booking),
	}
}

func (f *fakeRepository) addShow(price float64) *shows.Show {
	show := &shows.Show{
		ID:            uuid.New(),
		MovieID:       uuid.New(),
		ShowDateTime:  time.Date(2026, 10, 3, 18, 0, 0, 0, time.UTC),
		ShowPrice:     price,
		OccupiedSeats: shows.SeatMap{},
	}
	f.shows[show.ID] = show
	return show
}

func (f *fakeRepository) CreateWithSeatReservation(ctx context.Context, booking *Booking) error {
	if f.failWith != nil {
		return f.failWith
	}

	show, ok := f.shows[booking.ShowID]
	if !ok {
		return shows.ErrShowNotFound
	}

	if conflicts := show.OccupiedSeats.Conflicts(booking.Seats); len(conflicts) > 0 {
		return fmt.Errorf("%w: %s", ErrSeatConflict, strings.Join(conflicts, ", "))
	}

	show.OccupiedSeats = show.OccupiedSeats.Occupy(booking.Seats)
	booking.ID = uuid.New()
	booking.Show = show
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return booking, nil
}

func (f *fakeRepository) GetByUserID(ctx context.Context, userID string) ([]Booking, error) {
	var records []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			records = append(records, *b)
		}
	}
	return records, nil
}

func (f *fakeRepository) DeleteWithSeatRelease(ctx context.Context, booking *Booking) error {
	if _, ok := f.bookings[booking.ID]; !ok {
		return ErrBookingNotFound
	}

	if show, ok := f.shows[booking.ShowID]; ok {
		show.OccupiedSeats.Release(booking.Seats)
	}

	delete(f.bookings, booking.ID)
	return nil
}

// fakeProducer records published notifications.
type fakeProducer struct {
	published []*notifications.BookingNotification
}

func (f *fakeProducer) PublishNotification(ctx context.Context, n *notifications.BookingNotification) error {
	f.published = append(f.published, n)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func (f *fakeProducer) HealthCheck(ctx context.Context) error { return nil }

func newBookingRequest(showID uuid.UUID, seats ...string) CreateBookingRequest {
	return CreateBookingRequest{
		User: BookingUser{
			Name:   "Ada Lovelace",
			UserID: "user-1",
		},
		Show:       showID.String(),
		Seats:      seats,
		TotalPrice: 24.00,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("marks seats occupied and persists the booking", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(12.00)
		producer := &fakeProducer{}
		svc := NewService(repo, nil, time.Minute, nil, producer)

		resp, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "A1", "A2"))
		if err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}

		if got, want := len(resp.Seats), 2; got != want {
			t.Errorf("booked seats = %d, want %d", got, want)
		}
		for _, seat := range []string{"A1", "A2"} {
			if !show.OccupiedSeats.IsOccupied(seat) {
				t.Errorf("seat %s not marked occupied", seat)
			}
		}
		if resp.User.UserID != "user-1" {
			t.Errorf("response user = %q, want %q", resp.User.UserID, "user-1")
		}
		if len(producer.published) != 1 {
			t.Fatalf("published notifications = %d, want 1", len(producer.published))
		}
		if producer.published[0].Type != notifications.NotificationTypeBookingConfirmed {
			t.Errorf("notification type = %s, want %s", producer.published[0].Type, notifications.NotificationTypeBookingConfirmed)
		}
	})

	t.Run("persists a free booking with zero total price", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(0)
		svc := NewService(repo, nil, time.Minute, nil, nil)

		req := newBookingRequest(show.ID, "H1")
		req.TotalPrice = 0
		resp, err := svc.CreateBooking(context.Background(), req)
		if err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}
		if resp.TotalPrice != 0 {
			t.Errorf("booking price = %v, want 0", resp.TotalPrice)
		}
		if !show.OccupiedSeats.IsOccupied("H1") {
			t.Error("seat H1 not marked occupied")
		}
	})

	t.Run("rejects unknown show without persisting anything", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		svc := NewService(repo, nil, time.Minute, nil, nil)

		_, err := svc.CreateBooking(context.Background(), newBookingRequest(uuid.New(), "A1"))
		if !errors.Is(err, shows.ErrShowNotFound) {
			t.Fatalf("CreateBooking() error = %v, want ErrShowNotFound", err)
		}
		if len(repo.bookings) != 0 {
			t.Errorf("bookings persisted = %d, want 0", len(repo.bookings))
		}
	})

	t.Run("rejects overlapping seats with a conflict", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(12.00)
		svc := NewService(repo, nil, time.Minute, nil, nil)

		if _, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "B1", "B2")); err != nil {
			t.Fatalf("first CreateBooking() error = %v", err)
		}

		second := newBookingRequest(show.ID, "B2", "B3")
		second.User.UserID = "user-2"
		_, err := svc.CreateBooking(context.Background(), second)
		if !errors.Is(err, ErrSeatConflict) {
			t.Fatalf("second CreateBooking() error = %v, want ErrSeatConflict", err)
		}

		// The overlapping request must not claim its non-conflicting seat
		if show.OccupiedSeats.IsOccupied("B3") {
			t.Error("seat B3 occupied by a rejected booking")
		}
		if len(repo.bookings) != 1 {
			t.Errorf("bookings persisted = %d, want 1", len(repo.bookings))
		}
	})

	t.Run("rejects malformed show identifier", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newFakeRepository(), nil, time.Minute, nil, nil)

		req := newBookingRequest(uuid.New(), "A1")
		req.Show = "not-a-uuid"
		if _, err := svc.CreateBooking(context.Background(), req); err == nil {
			t.Fatal("CreateBooking() error = nil, want parse failure")
		}
	})
}

// CreateWithSeatReservation and the in-memory fake both decide conflicts
// through shows.SeatMap, so the check-then-occupy sequence they share is
// covered directly: of two overlapping requests exactly one may pass.
func TestSeatReservationSequence(t *testing.T) {
	t.Parallel()

	occupancy := shows.SeatMap{}

	first := []string{"A1", "A2"}
	if conflicts := occupancy.Conflicts(first); len(conflicts) != 0 {
		t.Fatalf("Conflicts() on empty map = %v, want none", conflicts)
	}
	occupancy = occupancy.Occupy(first)

	second := []string{"A2", "A3"}
	conflicts := occupancy.Conflicts(second)
	if len(conflicts) != 1 || conflicts[0] != "A2" {
		t.Fatalf("Conflicts() = %v, want [A2]", conflicts)
	}

	// The rejected request must not have touched the map
	if occupancy.IsOccupied("A3") {
		t.Error("seat A3 occupied without a successful reservation")
	}

	// Releasing the first reservation makes the overlap bookable again
	occupancy.Release(first)
	if conflicts := occupancy.Conflicts(second); len(conflicts) != 0 {
		t.Errorf("Conflicts() after release = %v, want none", conflicts)
	}
}

func TestGetUserBookings(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	show := repo.addShow(10.00)
	svc := NewService(repo, nil, time.Minute, nil, nil)

	if _, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "C1")); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	other := newBookingRequest(show.ID, "C2")
	other.User.UserID = "user-2"
	if _, err := svc.CreateBooking(context.Background(), other); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	records, err := svc.GetUserBookings(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetUserBookings() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("bookings = %d, want 1", len(records))
	}

	// Round trip preserves the booked seats, price and user fields
	got := records[0]
	if got.User.UserID != "user-1" || got.User.Name != "Ada Lovelace" {
		t.Errorf("booking user = %+v, want user-1/Ada Lovelace", got.User)
	}
	if len(got.Seats) != 1 || got.Seats[0] != "C1" {
		t.Errorf("booking seats = %v, want [C1]", got.Seats)
	}
	if got.TotalPrice != 24.00 {
		t.Errorf("booking price = %v, want 24.00", got.TotalPrice)
	}
	if got.Show == nil || got.Show.ID != show.ID {
		t.Error("booking show not inlined")
	}

	none, err := svc.GetUserBookings(context.Background(), "user-3")
	if err != nil {
		t.Fatalf("GetUserBookings() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("bookings for unknown user = %d, want 0", len(none))
	}
}

func TestDeleteBooking(t *testing.T) {
	t.Parallel()

	t.Run("releases seats and emits a cancellation", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(10.00)
		producer := &fakeProducer{}
		svc := NewService(repo, nil, time.Minute, nil, producer)

		resp, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "D1", "D2"))
		if err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}

		if err := svc.DeleteBooking(context.Background(), uuid.MustParse(resp.ID), "user-1"); err != nil {
			t.Fatalf("DeleteBooking() error = %v", err)
		}

		for _, seat := range []string{"D1", "D2"} {
			if show.OccupiedSeats.IsOccupied(seat) {
				t.Errorf("seat %s still occupied after delete", seat)
			}
		}
		if len(repo.bookings) != 0 {
			t.Errorf("bookings remaining = %d, want 0", len(repo.bookings))
		}
		if got := producer.published[len(producer.published)-1].Type; got != notifications.NotificationTypeBookingCancelled {
			t.Errorf("last notification type = %s, want %s", got, notifications.NotificationTypeBookingCancelled)
		}
	})

	t.Run("returns not found for unknown booking", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newFakeRepository(), nil, time.Minute, nil, nil)

		err := svc.DeleteBooking(context.Background(), uuid.New(), "user-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("DeleteBooking() error = %v, want ErrBookingNotFound", err)
		}
	})

	t.Run("refuses deletion by a different user", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(10.00)
		svc := NewService(repo, nil, time.Minute, nil, nil)

		resp, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "E1"))
		if err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}

		err = svc.DeleteBooking(context.Background(), uuid.MustParse(resp.ID), "user-2")
		if !errors.Is(err, ErrNotBookingOwner) {
			t.Fatalf("DeleteBooking() error = %v, want ErrNotBookingOwner", err)
		}
		if !show.OccupiedSeats.IsOccupied("E1") {
			t.Error("seat E1 released by a refused delete")
		}
	})
}

func TestDeleteUserBooking(t *testing.T) {
	t.Parallel()

	t.Run("deletes the user's single booking", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(10.00)
		svc := NewService(repo, nil, time.Minute, nil, nil)

		if _, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "F1")); err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}

		if err := svc.DeleteUserBooking(context.Background(), "user-1"); err != nil {
			t.Fatalf("DeleteUserBooking() error = %v", err)
		}
		if show.OccupiedSeats.IsOccupied("F1") {
			t.Error("seat F1 still occupied after delete")
		}
	})

	t.Run("returns not found when the user has no bookings", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newFakeRepository(), nil, time.Minute, nil, nil)

		err := svc.DeleteUserBooking(context.Background(), "user-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("DeleteUserBooking() error = %v, want ErrBookingNotFound", err)
		}
	})

	t.Run("refuses when the user holds multiple bookings", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepository()
		show := repo.addShow(10.00)
		svc := NewService(repo, nil, time.Minute, nil, nil)

		if _, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "G1")); err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}
		if _, err := svc.CreateBooking(context.Background(), newBookingRequest(show.ID, "G2")); err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}

		err := svc.DeleteUserBooking(context.Background(), "user-1")
		if !errors.Is(err, ErrAmbiguousDelete) {
			t.Fatalf("DeleteUserBooking() error = %v, want ErrAmbiguousDelete", err)
		}
		if len(repo.bookings) != 2 {
			t.Errorf("bookings remaining = %d, want 2", len(repo.bookings))
		}
	})
}
