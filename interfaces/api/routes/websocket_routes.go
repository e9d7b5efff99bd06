package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
)

func SetupWebSocketRoutes(app *fiber.App, h *handlers.Handlers, requireAdmin fiber.Handler) {
	app.Use("/ws", h.WebSocketHandler.Upgrade)
	app.Get("/ws/admin/orders", requireAdmin, websocket.New(h.WebSocketHandler.AdminOrders))
}
