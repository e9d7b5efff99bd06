package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
)

func SetupCartRoutes(api fiber.Router, h *handlers.Handlers) {
	cart := api.Group("/cart")
	cart.Post("/session", h.CartHandler.NewSession)
	cart.Delete("/clear/:sessionId", h.CartHandler.Clear)
	cart.Get("/:sessionId", h.CartHandler.Get)
	cart.Post("/", h.CartHandler.Add)
	cart.Put("/:id", h.CartHandler.Update)
	cart.Delete("/:id", h.CartHandler.Remove)
}
