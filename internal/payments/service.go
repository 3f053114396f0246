package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	"cineshow/internal/shared/config"
	"cineshow/pkg/logger"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// SessionCreator abstracts the Stripe checkout session API so the service can
// be exercised without network access.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeSessionCreator struct{}

func (stripeSessionCreator) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// Service interface defines the contract for payment business logic
type Service interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResponse, error)
}

type service struct {
	sessions SessionCreator
	cfg      config.StripeConfig
	log      *logger.Logger
}

// NewService creates a new payment service backed by the Stripe API.
func NewService(cfg config.StripeConfig) Service {
	stripe.Key = cfg.SecretKey
	return NewServiceWithCreator(cfg, stripeSessionCreator{})
}

// NewServiceWithCreator wires a custom session creator, used by tests.
func NewServiceWithCreator(cfg config.StripeConfig, sessions SessionCreator) Service {
	return &service{
		sessions: sessions,
		cfg:      cfg,
		log:      logger.GetDefault(),
	}
}

// CreateCheckoutSession opens a hosted Stripe checkout for the given seats.
// Prices are stored in major currency units and Stripe expects minor units,
// so the amount is converted with rounding before it leaves the service.
func (s *service) CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	amountMinor := ToMinorUnits(req.TotalPrice)

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.cfg.ClientURL + "/success?paid=true"),
		CancelURL:  stripe.String(s.cfg.ClientURL + "/cancel"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(LineItemName(req.Seats)),
					},
					UnitAmount: stripe.Int64(amountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	sess, err := s.sessions.Create(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.log.LogCheckoutSessionCreated(ctx, sess.ID, amountMinor)

	return &CheckoutSessionResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// ToMinorUnits converts a major-unit price to minor units, rounding half away
// from zero so fractional cents from float arithmetic cannot skew the charge.
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// LineItemName builds the single line item label shown on the Stripe
// checkout page.
func LineItemName(seats []string) string {
	return "Movie Tickets: " + strings.Join(seats, ", ")
}
