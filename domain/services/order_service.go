package services

import (
	"context"
	"io"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/pkg/cart"
)

type OrderService interface {
	// Quote prices a prospective order: subtotal, shipping and total.
	Quote(ctx context.Context, items []dto.OrderItemInput) (cart.Quote, error)

	// Create persists the order with its item snapshots, then sends the confirmation
	// email and staff alerts best-effort.
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*models.Order, error)

	GetByID(ctx context.Context, id uint) (*models.Order, error)
	ListAll(ctx context.Context) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)

	// Export writes every order to w and returns the file extension and content type used.
	Export(ctx context.Context, w io.Writer) (ext string, contentType string, err error)
}
