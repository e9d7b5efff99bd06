package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount the way the storefront displays prices: two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type MessageResponse struct {
	Message string `json:"message"`
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
