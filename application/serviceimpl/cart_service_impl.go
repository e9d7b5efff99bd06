package serviceimpl

import (
	"context"
	"errors"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/repositories"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/cart"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

type CartServiceImpl struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) services.CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartServiceImpl) NewSession(ctx context.Context) (string, error) {
	sessionID, err := utils.GenerateSessionID()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate cart session", "error", err)
		return "", err
	}
	logger.DebugContext(ctx, "Cart session issued", "session_id", sessionID)
	return sessionID, nil
}

func (s *CartServiceImpl) GetCart(ctx context.Context, sessionID string) ([]*models.CartItem, error) {
	items, err := s.cartRepo.ListBySession(ctx, sessionID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load cart", "session_id", sessionID, "error", err)
		return nil, err
	}
	return items, nil
}

// AddItem merges the product into the session's cart. A quantity below 1 is an
// "add one more" and follows cart.Cart.AddItem.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Cart add for unknown product", "session_id", sessionID, "product_id", productID)
			return nil, services.ErrProductNotFound
		}
		return nil, err
	}

	line := cart.Item{ProductID: product.ID, Name: product.Name, Price: product.Price, ImageURL: product.ImageURL}
	pending := cart.New(sessionID)
	if quantity < 1 {
		pending.AddItem(line)
	} else {
		pending.AddQuantity(line, quantity)
	}

	item, err := s.cartRepo.AddOrIncrement(ctx, sessionID, productID, pending.TotalItems())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to add cart item", "session_id", sessionID, "product_id", productID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Cart item added", "session_id", sessionID, "product_id", productID, "quantity", item.Quantity)
	return item, nil
}

// UpdateQuantity applies the new quantity through the cart aggregate: a
// quantity of zero or less removes the line and returns a nil item.
func (s *CartServiceImpl) UpdateQuantity(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	existing, err := s.cartRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrCartItemNotFound
		}
		logger.ErrorContext(ctx, "Failed to load cart item", "cart_item_id", id, "error", err)
		return nil, err
	}

	summary := cart.New(existing.SessionID)
	summary.AddQuantity(cart.Item{ProductID: existing.ProductID}, existing.Quantity)
	summary.UpdateQuantity(existing.ProductID, quantity)
	if summary.TotalItems() == 0 {
		if err := s.RemoveItem(ctx, id); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, id, summary.TotalItems())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrCartItemNotFound
		}
		logger.ErrorContext(ctx, "Failed to update cart item", "cart_item_id", id, "error", err)
		return nil, err
	}
	return item, nil
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, id uint) error {
	deleted, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to remove cart item", "cart_item_id", id, "error", err)
		return err
	}
	if !deleted {
		return services.ErrCartItemNotFound
	}
	logger.InfoContext(ctx, "Cart item removed", "cart_item_id", id)
	return nil
}

func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	n, err := s.cartRepo.ClearSession(ctx, sessionID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to clear cart", "session_id", sessionID, "error", err)
		return err
	}
	logger.InfoContext(ctx, "Cart cleared", "session_id", sessionID, "removed", n)
	return nil
}
