package payments

import (
	"context"
	"errors"
	"testing"

	"cineshow/internal/shared/config"

	"github.com/stripe/stripe-go/v82"
)

type fakeSessionCreator struct {
	params  *stripe.CheckoutSessionParams
	session *stripe.CheckoutSession
	err     error
}

func (f *fakeSessionCreator) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func testConfig() config.StripeConfig {
	return config.StripeConfig{
		SecretKey: "sk_test_dummy",
		Currency:  "usd",
		ClientURL: "https://cineshow.example.com",
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Parallel()

	t.Run("builds the hosted checkout from the booking", func(t *testing.T) {
		t.Parallel()

		creator := &fakeSessionCreator{
			session: &stripe.CheckoutSession{
				ID:  "cs_test_123",
				URL: "https://checkout.stripe.com/pay/cs_test_123",
			},
		}
		svc := NewServiceWithCreator(testConfig(), creator)

		resp, err := svc.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{
			Seats:      []string{"A1", "A2"},
			TotalPrice: 24.00,
		})
		if err != nil {
			t.Fatalf("CreateCheckoutSession() error = %v", err)
		}

		if resp.SessionID != "cs_test_123" {
			t.Errorf("session id = %q, want %q", resp.SessionID, "cs_test_123")
		}
		if resp.URL != "https://checkout.stripe.com/pay/cs_test_123" {
			t.Errorf("session url = %q", resp.URL)
		}

		params := creator.params
		if got, want := *params.SuccessURL, "https://cineshow.example.com/success?paid=true"; got != want {
			t.Errorf("success url = %q, want %q", got, want)
		}
		if got, want := *params.CancelURL, "https://cineshow.example.com/cancel"; got != want {
			t.Errorf("cancel url = %q, want %q", got, want)
		}
		if got, want := *params.Mode, string(stripe.CheckoutSessionModePayment); got != want {
			t.Errorf("mode = %q, want %q", got, want)
		}

		if len(params.LineItems) != 1 {
			t.Fatalf("line items = %d, want 1", len(params.LineItems))
		}
		item := params.LineItems[0]
		if got, want := *item.PriceData.UnitAmount, int64(2400); got != want {
			t.Errorf("unit amount = %d, want %d", got, want)
		}
		if got, want := *item.PriceData.Currency, "usd"; got != want {
			t.Errorf("currency = %q, want %q", got, want)
		}
		if got, want := *item.PriceData.ProductData.Name, "Movie Tickets: A1, A2"; got != want {
			t.Errorf("line item name = %q, want %q", got, want)
		}
		if got, want := *item.Quantity, int64(1); got != want {
			t.Errorf("quantity = %d, want %d", got, want)
		}
	})

	t.Run("propagates upstream failures", func(t *testing.T) {
		t.Parallel()

		creator := &fakeSessionCreator{err: errors.New("stripe unavailable")}
		svc := NewServiceWithCreator(testConfig(), creator)

		if _, err := svc.CreateCheckoutSession(context.Background(), CheckoutSessionRequest{
			Seats:      []string{"A1"},
			TotalPrice: 9.50,
		}); err == nil {
			t.Fatal("CreateCheckoutSession() error = nil, want failure")
		}
	})
}

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		price float64
		want  int64
	}{
		{0, 0},
		{20.00, 2000},
		{9.50, 950},
		{12.00, 1200},
		{7.77, 777},
		{19.999, 2000},
		{0.1 + 0.2, 30}, // float residue must not leak into the charge
	}

	for _, tc := range cases {
		if got := ToMinorUnits(tc.price); got != tc.want {
			t.Errorf("ToMinorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestLineItemName(t *testing.T) {
	t.Parallel()

	if got, want := LineItemName([]string{"A1", "A2", "B1"}), "Movie Tickets: A1, A2, B1"; got != want {
		t.Errorf("LineItemName() = %q, want %q", got, want)
	}
	if got, want := LineItemName([]string{"C4"}), "Movie Tickets: C4"; got != want {
		t.Errorf("LineItemName() = %q, want %q", got, want)
	}
}
