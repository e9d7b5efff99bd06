// Package cart holds the cart aggregate used by the server-side cart API and
// checkout. Lines are merged by product and zero quantities remove a line.
package cart

import (
	"github.com/shopspring/decimal"
)

// Item is one cart line. Price is the unit price snapshot taken when the
// product was added; it is not refreshed from the catalog.
type Item struct {
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"imageUrl,omitempty"`
}

// Cart is an ordered list of lines with at most one line per product.
type Cart struct {
	SessionID string `json:"sessionId"`
	Items     []Item `json:"items"`
}

func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []Item{}}
}

func (c *Cart) indexOf(productID uint) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem increments the existing line for item.ProductID by one, or appends
// the item with quantity 1. The incoming Quantity field is ignored.
func (c *Cart) AddItem(item Item) {
	if i := c.indexOf(item.ProductID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// AddQuantity merges qty units of item into the cart. A qty below 1 is treated as 1.
func (c *Cart) AddQuantity(item Item, qty int) {
	if qty < 1 {
		qty = 1
	}
	if i := c.indexOf(item.ProductID); i >= 0 {
		c.Items[i].Quantity += qty
		return
	}
	item.Quantity = qty
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity of a line. Zero or negative removes it.
// Unknown products are ignored.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if i := c.indexOf(productID); i >= 0 {
		c.Items[i].Quantity = quantity
	}
}

func (c *Cart) RemoveItem(productID uint) {
	if i := c.indexOf(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

func (c *Cart) TotalItems() int {
	return TotalItems(c.Items)
}

func (c *Cart) TotalPrice() decimal.Decimal {
	return TotalPrice(c.Items)
}

func TotalItems(items []Item) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity over all lines.
func TotalPrice(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
