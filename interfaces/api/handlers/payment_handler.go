package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/utils"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	intent, err := h.paymentService.CreatePaymentIntent(c.UserContext(), req.Amount)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret, ID: intent.ID})
}

func (h *PaymentHandler) PayPalSetup(c *fiber.Ctx) error {
	token, err := h.paymentService.PayPalSetup(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.PayPalSetupResponse{ClientToken: token})
}

func (h *PaymentHandler) PayPalCreateOrder(c *fiber.Ctx) error {
	var req dto.PayPalCreateOrderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	resp, err := h.paymentService.PayPalCreateOrder(c.UserContext(), req.Amount, req.Currency, req.Intent)
	if err != nil {
		return serviceError(c, err)
	}
	return relay(c, resp)
}

func (h *PaymentHandler) PayPalCaptureOrder(c *fiber.Ctx) error {
	orderID := c.Params("orderID")
	if orderID == "" {
		return utils.BadRequestResponse(c, "PayPal order ID is required")
	}

	resp, err := h.paymentService.PayPalCaptureOrder(c.UserContext(), orderID)
	if err != nil {
		return serviceError(c, err)
	}
	return relay(c, resp)
}

// relay passes the provider's status and body through unchanged.
func relay(c *fiber.Ctx, resp *ports.GatewayResponse) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(resp.StatusCode).Send(resp.Body)
}
