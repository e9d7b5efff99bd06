package serviceimpl

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
)

type PaymentServiceImpl struct {
	card     ports.CardPaymentPort
	paypal   ports.PayPalPort
	currency string
}

func NewPaymentService(card ports.CardPaymentPort, paypal ports.PayPalPort, currency string) services.PaymentService {
	return &PaymentServiceImpl{
		card:     card,
		paypal:   paypal,
		currency: currency,
	}
}

func (s *PaymentServiceImpl) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal) (*ports.PaymentIntent, error) {
	if s.card == nil || !s.card.IsConfigured() {
		return nil, ports.ErrPaymentNotConfigured
	}
	if !amount.IsPositive() {
		return nil, services.ErrInvalidAmount
	}

	intent, err := s.card.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create payment intent", "amount", amount.StringFixed(2), "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Payment intent created", "intent_id", intent.ID, "amount", intent.Amount, "currency", intent.Currency)
	return intent, nil
}

func (s *PaymentServiceImpl) PayPalSetup(ctx context.Context) (string, error) {
	if s.paypal == nil || !s.paypal.IsConfigured() {
		return "", ports.ErrPaymentNotConfigured
	}
	token, err := s.paypal.ClientToken(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get PayPal client token", "error", err)
		return "", err
	}
	return token, nil
}

func (s *PaymentServiceImpl) PayPalCreateOrder(ctx context.Context, amount, currency, intent string) (*ports.GatewayResponse, error) {
	if s.paypal == nil || !s.paypal.IsConfigured() {
		return nil, ports.ErrPaymentNotConfigured
	}
	value, err := decimal.NewFromString(amount)
	if err != nil || !value.IsPositive() {
		return nil, services.ErrInvalidAmount
	}

	resp, err := s.paypal.CreateOrder(ctx, value, currency, intent)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create PayPal order", "amount", amount, "currency", currency, "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "PayPal order created", "status", resp.StatusCode, "amount", amount, "currency", currency)
	return resp, nil
}

func (s *PaymentServiceImpl) PayPalCaptureOrder(ctx context.Context, orderID string) (*ports.GatewayResponse, error) {
	if s.paypal == nil || !s.paypal.IsConfigured() {
		return nil, ports.ErrPaymentNotConfigured
	}
	resp, err := s.paypal.CaptureOrder(ctx, orderID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to capture PayPal order", "paypal_order_id", orderID, "error", err)
		return nil, err
	}
	logger.InfoContext(ctx, "PayPal order captured", "paypal_order_id", orderID, "status", resp.StatusCode)
	return resp, nil
}
