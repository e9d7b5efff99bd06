package ports

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrPaymentNotConfigured = errors.New("payment provider not configured")

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"` // minor units
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CardPaymentPort creates card payment intents (Stripe).
type CardPaymentPort interface {
	IsConfigured() bool
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error)
}

// GatewayResponse is a provider response relayed to the storefront as-is.
type GatewayResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// PayPalPort wraps the PayPal Orders v2 API.
type PayPalPort interface {
	IsConfigured() bool
	ClientToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, intent string) (*GatewayResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (*GatewayResponse, error)
}
