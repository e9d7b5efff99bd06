package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
)

// SetupPaymentRoutes keeps the PayPal paths at the root, where the PayPal button expects them.
func SetupPaymentRoutes(app *fiber.App, api fiber.Router, h *handlers.Handlers) {
	api.Post("/create-payment-intent", h.PaymentHandler.CreatePaymentIntent)

	app.Get("/setup", h.PaymentHandler.PayPalSetup)
	app.Post("/order", h.PaymentHandler.PayPalCreateOrder)
	app.Post("/order/:orderID/capture", h.PaymentHandler.PayPalCaptureOrder)
}
