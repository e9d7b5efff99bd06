package repositories

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type CartRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]*models.CartItem, error)
	GetByID(ctx context.Context, id uint) (*models.CartItem, error)
	// AddOrIncrement merges into the (session, product) line if it exists, otherwise inserts it.
	AddOrIncrement(ctx context.Context, sessionID string, productID uint, quantity int) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ClearSession(ctx context.Context, sessionID string) (int64, error)
}
