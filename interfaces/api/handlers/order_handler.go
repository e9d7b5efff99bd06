package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create validates the checkout payload and stores the order with its lines.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if moneyErrors := req.MoneyErrors(); len(moneyErrors) > 0 {
		return utils.ValidationErrorResponse(c, moneyErrors)
	}

	order, err := h.orderService.Create(ctx, &req)
	if err != nil {
		return serviceError(c, err)
	}

	logger.InfoContext(ctx, "Checkout completed", "order_id", order.ID)
	return utils.CreatedResponse(c, dto.OrderToOrderResponse(order))
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := dto.ParseID(c.Params("id"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.orderService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.OrderToOrderResponse(order))
}

// Quote returns the subtotal, shipping and total the checkout review step shows.
func (h *OrderHandler) Quote(c *fiber.Ctx) error {
	var req dto.CheckoutQuoteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	quote, err := h.orderService.Quote(c.UserContext(), req.Items)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.QuoteToResponse(quote))
}
