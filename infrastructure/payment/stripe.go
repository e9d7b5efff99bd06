package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/client"

	"github.com/DsDac0/Website/domain/ports"
)

// StripeGateway creates card payment intents.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway returns a gateway that reports itself unconfigured when secretKey is empty.
func NewStripeGateway(secretKey string) ports.CardPaymentPort {
	if secretKey == "" {
		return &StripeGateway{}
	}
	return &StripeGateway{api: client.New(secretKey, nil)}
}

func (g *StripeGateway) IsConfigured() bool {
	return g.api != nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*ports.PaymentIntent, error) {
	if g.api == nil {
		return nil, ports.ErrPaymentNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(MinorUnits(amount)),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: %w", err)
	}

	return &ports.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// MinorUnits converts an amount to the smallest currency unit, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
