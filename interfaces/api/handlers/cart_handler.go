package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/utils"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) NewSession(c *fiber.Ctx) error {
	sessionID, err := h.cartService.NewSession(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.CreatedResponse(c, dto.CartSessionResponse{SessionID: sessionID})
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if sessionID == "" {
		return utils.BadRequestResponse(c, "Session ID is required")
	}

	items, err := h.cartService.GetCart(c.UserContext(), sessionID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.CartToResponse(sessionID, items))
}

// Add merges the product into the session's cart line.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req dto.AddToCartRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.cartService.AddItem(c.UserContext(), req.SessionID, req.ProductID, req.Quantity)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.CreatedResponse(c, dto.CartItemToResponse(item))
}

// Update sets a line's quantity; zero or less removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	id, ok := dto.ParseID(c.Params("id"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid cart item ID")
	}

	var req dto.UpdateCartItemRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.cartService.UpdateQuantity(c.UserContext(), id, *req.Quantity)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.UpdateCartItemResponse{
		Removed: item == nil,
		Item:    dto.CartItemToResponse(item),
	})
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := dto.ParseID(c.Params("id"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid cart item ID")
	}

	if err := h.cartService.RemoveItem(c.UserContext(), id); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Item removed from cart"})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.cartService.Clear(c.UserContext(), c.Params("sessionId")); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Cart cleared"})
}
