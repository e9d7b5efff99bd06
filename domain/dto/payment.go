package dto

import (
	"github.com/shopspring/decimal"
)

type CreatePaymentIntentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	ID           string `json:"id"`
}

type PayPalSetupResponse struct {
	ClientToken string `json:"clientToken"`
}

type PayPalCreateOrderRequest struct {
	Amount   string `json:"amount" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
	Intent   string `json:"intent" validate:"required,oneof=CAPTURE AUTHORIZE capture authorize"`
}
