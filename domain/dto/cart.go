package dto

import (
	"time"

	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/pkg/cart"
)

type AddToCartRequest struct {
	SessionID string `json:"sessionId" validate:"required,max=100"`
	ProductID uint   `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// UpdateCartItemRequest.Quantity is a pointer so a missing value can be told apart
// from an explicit zero, which removes the line.
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type CartItemResponse struct {
	ID        uint             `json:"id"`
	SessionID string           `json:"sessionId"`
	ProductID uint             `json:"productId"`
	Quantity  int              `json:"quantity"`
	CreatedAt time.Time        `json:"createdAt"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type CartResponse struct {
	SessionID  string             `json:"sessionId"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	TotalPrice string             `json:"totalPrice"`
}

type CartSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type UpdateCartItemResponse struct {
	Removed bool              `json:"removed"`
	Item    *CartItemResponse `json:"item,omitempty"`
}

func CartItemToResponse(item *models.CartItem) *CartItemResponse {
	if item == nil {
		return nil
	}
	return &CartItemResponse{
		ID:        item.ID,
		SessionID: item.SessionID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
		Product:   ProductToProductResponse(item.Product),
	}
}

// CartFromItems folds persisted cart rows into a cart aggregate priced at the
// current product price. Rows whose product is gone are skipped.
func CartFromItems(sessionID string, items []*models.CartItem) *cart.Cart {
	c := cart.New(sessionID)
	for _, it := range items {
		if it.Product == nil {
			continue
		}
		c.AddQuantity(cart.Item{
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			ImageURL:  it.Product.ImageURL,
		}, it.Quantity)
	}
	return c
}

func CartToResponse(sessionID string, items []*models.CartItem) *CartResponse {
	resp := &CartResponse{
		SessionID: sessionID,
		Items:     make([]CartItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, *CartItemToResponse(it))
	}
	summary := CartFromItems(sessionID, items)
	resp.TotalItems = summary.TotalItems()
	resp.TotalPrice = FormatMoney(summary.TotalPrice())
	return resp
}
