package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodBank PaymentMethod = "bank"
)

// Label returns the customer-facing (Macedonian) name of the payment method.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCash:
		return "Готовина при достава"
	case PaymentMethodCard:
		return "Картичка"
	default:
		return "Банковна дознака"
	}
}

type Order struct {
	ID            uint            `gorm:"primaryKey"`
	FirstName     string          `gorm:"size:100;not null"`
	LastName      string          `gorm:"size:100;not null"`
	Email         string          `gorm:"size:255;not null"`
	Phone         string          `gorm:"size:50;not null"`
	Address       string          `gorm:"type:text;not null"`
	City          string          `gorm:"size:100;not null"`
	PostalCode    string          `gorm:"size:20;not null"`
	PaymentMethod PaymentMethod   `gorm:"size:50;not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus     `gorm:"size:50;not null;default:pending;index"`
	CreatedAt     time.Time       `gorm:"index"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem.Price is the unit price captured when the order was placed.
// It is never recalculated from the product afterwards.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
