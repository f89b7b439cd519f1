package stripe

import (
	"errors"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

type (
	Event           = stripe.Event
	CheckoutSession = stripe.CheckoutSession
)

const EventCheckoutSessionCompleted = stripe.EventTypeCheckoutSessionCompleted

var ErrWebhookSecretMissing = errors.New("webhook secret not configured")

// CheckoutSessionParams describes a single-line hosted checkout for a whole cart.
type CheckoutSessionParams struct {
	// Amount in major currency units; converted to minor units for the gateway.
	Amount            float64
	Currency          string
	ProductName       string
	CustomerEmail     string
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
	Metadata          map[string]string
}

// Client is the payment gateway surface used by checkout.
type Client interface {
	CreateCheckoutSession(params *CheckoutSessionParams) (*CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	Ping() error
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

// ToMinorUnits converts a major-unit amount to the gateway's integer minor units.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts gateway minor units back to a major-unit amount.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

func (s *stripeClient) CreateCheckoutSession(p *CheckoutSessionParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(ToMinorUnits(p.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(p.ClientReferenceID),
	}

	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}

	for key, value := range p.Metadata {
		params.AddMetadata(key, value)
	}

	return session.New(params)
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, ErrWebhookSecretMissing
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}

// Ping reads the account balance; used by the health check.
func (s *stripeClient) Ping() error {
	_, err := balance.Get(nil)
	return err
}
