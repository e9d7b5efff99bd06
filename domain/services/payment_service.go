package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DsDac0/Website/domain/ports"
)

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (*ports.PaymentIntent, error)

	PayPalSetup(ctx context.Context) (string, error)
	PayPalCreateOrder(ctx context.Context, amount, currency, intent string) (*ports.GatewayResponse, error)
	PayPalCaptureOrder(ctx context.Context, orderID string) (*ports.GatewayResponse, error)
}
