package models

import "time"

// CartItem is a server-side cart line keyed by (SessionID, ProductID).
// Quantity is always >= 1; a line at zero is deleted instead of stored.
type CartItem struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:100;not null;uniqueIndex:idx_cart_session_product"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_cart_session_product"`
	Quantity  int    `gorm:"not null;default:1"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
