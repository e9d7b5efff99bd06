package services

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type CartService interface {
	NewSession(ctx context.Context) (string, error)

	// GetCart lists the session's lines with their products, oldest first.
	GetCart(ctx context.Context, sessionID string) ([]*models.CartItem, error)

	// AddItem merges into an existing (session, product) line or creates one.
	AddItem(ctx context.Context, sessionID string, productID uint, quantity int) (*models.CartItem, error)

	// UpdateQuantity sets the line quantity. A quantity of zero or less removes the line,
	// in which case the returned item is nil.
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, error)

	RemoveItem(ctx context.Context, id uint) error
	Clear(ctx context.Context, sessionID string) error
}
