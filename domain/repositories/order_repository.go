package repositories

import (
	"context"

	"github.com/DsDac0/Website/domain/models"
)

type OrderRepository interface {
	// CreateWithItems persists the order and its lines in one transaction.
	CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	// GetWithItems loads the order with items and their products.
	GetWithItems(ctx context.Context, id uint) (*models.Order, error)
	ListWithItems(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) error
}
