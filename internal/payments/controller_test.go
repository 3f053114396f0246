package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubPaymentService struct {
	resp *CheckoutSessionResponse
	err  error
}

func (s *stubPaymentService) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	return s.resp, s.err
}

func postCheckout(t *testing.T, svc Service, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	SetupPaymentRoutes(engine.Group("/api/v1"), NewController(svc))

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/create-checkout-session", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCreateCheckoutSessionEndpoint(t *testing.T) {
	okService := &stubPaymentService{
		resp: &CheckoutSessionResponse{SessionID: "cs_test_123", URL: "https://checkout.stripe.com/pay/cs_test_123"},
	}

	t.Run("returns the session for a priced booking", func(t *testing.T) {
		rec := postCheckout(t, okService, map[string]interface{}{
			"seats":      []string{"A1", "A2"},
			"totalPrice": 24.0,
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})

	t.Run("accepts a zero total price", func(t *testing.T) {
		rec := postCheckout(t, okService, map[string]interface{}{
			"seats":      []string{"A1"},
			"totalPrice": 0,
		})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})

	t.Run("rejects a negative total price", func(t *testing.T) {
		rec := postCheckout(t, okService, map[string]interface{}{
			"seats":      []string{"A1"},
			"totalPrice": -0.01,
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects an empty seat list", func(t *testing.T) {
		rec := postCheckout(t, okService, map[string]interface{}{
			"seats":      []string{},
			"totalPrice": 10.0,
		})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns 502 when the processor fails", func(t *testing.T) {
		rec := postCheckout(t, &stubPaymentService{err: errors.New("stripe unavailable")}, map[string]interface{}{
			"seats":      []string{"A1"},
			"totalPrice": 10.0,
		})

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
		}
	})
}
