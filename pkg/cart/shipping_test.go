package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestShippingFor(t *testing.T) {
	p := DefaultShippingPolicy()

	tests := []struct {
		subtotal string
		want     string
	}{
		{"0", "200"},
		{"2999.99", "200"},
		{"3000", "200"},
		{"3000.01", "0"},
		{"12500", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.subtotal, func(t *testing.T) {
			got := p.ShippingFor(decimal.RequireFromString(tt.subtotal))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ShippingFor(%s) = %s, want %s", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	p := DefaultShippingPolicy()
	items := []Item{
		{ProductID: 1, Price: decimal.RequireFromString("1200.00"), Quantity: 2},
		{ProductID: 2, Price: decimal.RequireFromString("350.50"), Quantity: 1},
	}

	q := p.Quote(items)
	if !q.Subtotal.Equal(decimal.RequireFromString("2750.50")) {
		t.Errorf("subtotal = %s", q.Subtotal)
	}
	if !q.Shipping.Equal(decimal.NewFromInt(200)) {
		t.Errorf("shipping = %s", q.Shipping)
	}
	if !q.Total.Equal(decimal.RequireFromString("2950.50")) {
		t.Errorf("total = %s", q.Total)
	}
	if q.Items != 3 {
		t.Errorf("items = %d", q.Items)
	}
}

func TestNewShippingPolicyFallsBack(t *testing.T) {
	p := NewShippingPolicy("abc", "150")
	if !p.FreeAbove.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected default threshold, got %s", p.FreeAbove)
	}
	if !p.Fee.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected fee 150, got %s", p.Fee)
	}
}
