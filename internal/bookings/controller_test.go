package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cineshow/internal/shows"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubService struct {
	createResp *BookingResponse
	createErr  error
	listResp   []BookingResponse
	listErr    error
	deleteErr  error
}

func (s *stubService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubService) GetUserBookings(ctx context.Context, userID string) ([]BookingResponse, error) {
	return s.listResp, s.listErr
}

func (s *stubService) DeleteBooking(ctx context.Context, bookingID uuid.UUID, userID string) error {
	return s.deleteErr
}

func (s *stubService) DeleteUserBooking(ctx context.Context, userID string) error {
	return s.deleteErr
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupBookingRoutes(engine.Group("/api/v1"), NewController(svc))
	return engine
}

func postBooking(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	validBody := map[string]interface{}{
		"user":       map[string]string{"name": "Ada Lovelace", "userId": "user-1"},
		"show":       uuid.NewString(),
		"seats":      []string{"A1", "A2"},
		"totalPrice": 24.0,
	}

	t.Run("returns 201 with the created booking", func(t *testing.T) {
		svc := &stubService{createResp: &BookingResponse{ID: uuid.NewString(), Seats: []string{"A1", "A2"}}}
		rec := postBooking(t, newTestRouter(svc), validBody)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
	})

	t.Run("accepts a free booking with zero total price", func(t *testing.T) {
		svc := &stubService{createResp: &BookingResponse{ID: uuid.NewString(), Seats: []string{"A1"}}}
		rec := postBooking(t, newTestRouter(svc), map[string]interface{}{
			"user":       map[string]string{"name": "Ada Lovelace", "userId": "user-1"},
			"show":       uuid.NewString(),
			"seats":      []string{"A1"},
			"totalPrice": 0,
		})

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
	})

	t.Run("rejects a negative total price", func(t *testing.T) {
		rec := postBooking(t, newTestRouter(&stubService{}), map[string]interface{}{
			"user":       map[string]string{"name": "Ada Lovelace", "userId": "user-1"},
			"show":       uuid.NewString(),
			"seats":      []string{"A1"},
			"totalPrice": -1.0,
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 400 for an invalid payload", func(t *testing.T) {
		rec := postBooking(t, newTestRouter(&stubService{}), map[string]interface{}{
			"user":  map[string]string{"name": "Ada Lovelace", "userId": "user-1"},
			"show":  "not-a-uuid",
			"seats": []string{},
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 404 when the show does not exist", func(t *testing.T) {
		svc := &stubService{createErr: shows.ErrShowNotFound}
		rec := postBooking(t, newTestRouter(svc), validBody)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("returns 409 when seats are taken", func(t *testing.T) {
		svc := &stubService{createErr: ErrSeatConflict}
		rec := postBooking(t, newTestRouter(svc), validBody)

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
	})
}

func TestGetUserBookingsEndpoint(t *testing.T) {
	t.Run("returns the user's bookings", func(t *testing.T) {
		svc := &stubService{listResp: []BookingResponse{{ID: uuid.NewString()}}}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/booking?userId=user-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("requires the userId parameter", func(t *testing.T) {
		router := newTestRouter(&stubService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/booking", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestDeleteBookingEndpoint(t *testing.T) {
	deleteURL := "/api/v1/bookings/" + uuid.NewString() + "?userId=user-1"

	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"deletes the booking", nil, http.StatusOK},
		{"unknown booking", ErrBookingNotFound, http.StatusNotFound},
		{"different owner", ErrNotBookingOwner, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubService{deleteErr: tc.serviceErr})

			req := httptest.NewRequest(http.MethodDelete, deleteURL, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
		})
	}

	t.Run("rejects a malformed booking id", func(t *testing.T) {
		router := newTestRouter(&stubService{})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/bookings/not-a-uuid?userId=user-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestDeleteUserBookingEndpoint(t *testing.T) {
	t.Run("refuses an ambiguous delete", func(t *testing.T) {
		router := newTestRouter(&stubService{deleteErr: ErrAmbiguousDelete})

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/booking?userId=user-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
	})
}
