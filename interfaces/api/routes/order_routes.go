package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
)

func SetupOrderRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Post("/checkout/quote", h.OrderHandler.Quote)

	orders := api.Group("/orders")
	orders.Post("/", h.OrderHandler.Create)
	orders.Get("/:id", h.OrderHandler.GetByID)
}

func SetupContactRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Post("/contact", h.ContactHandler.Submit)
}
