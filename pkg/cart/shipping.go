package cart

import "github.com/shopspring/decimal"

// ShippingPolicy charges Fee unless the subtotal is strictly above FreeAbove.
type ShippingPolicy struct {
	FreeAbove decimal.Decimal
	Fee       decimal.Decimal
}

// DefaultShippingPolicy: free above 3000 MKD, otherwise 200 MKD.
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeAbove: decimal.NewFromInt(3000),
		Fee:       decimal.NewFromInt(200),
	}
}

// NewShippingPolicy parses decimal strings and falls back to the default for unparsable input.
func NewShippingPolicy(freeAbove, fee string) ShippingPolicy {
	p := DefaultShippingPolicy()
	if v, err := decimal.NewFromString(freeAbove); err == nil {
		p.FreeAbove = v
	}
	if v, err := decimal.NewFromString(fee); err == nil {
		p.Fee = v
	}
	return p
}

type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
	Items    int             `json:"items"`
}

func (p ShippingPolicy) ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeAbove) {
		return decimal.Zero
	}
	return p.Fee
}

// Quote computes what the checkout review step shows for the given lines.
func (p ShippingPolicy) Quote(items []Item) Quote {
	subtotal := TotalPrice(items)
	shipping := p.ShippingFor(subtotal)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
		Items:    TotalItems(items),
	}
}
