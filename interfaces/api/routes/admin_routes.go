package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
)

func SetupAdminRoutes(api fiber.Router, h *handlers.Handlers, requireAdmin fiber.Handler) {
	admin := api.Group("/admin")

	admin.Post("/login", h.AuthHandler.Login)
	admin.Post("/logout", h.AuthHandler.Logout)
	admin.Get("/check", h.AuthHandler.Check)

	admin.Get("/orders/export", requireAdmin, h.AdminHandler.ExportOrders)
	admin.Get("/orders", requireAdmin, h.AdminHandler.ListOrders)
	admin.Put("/orders/:id/status", requireAdmin, h.AdminHandler.UpdateOrderStatus)
	admin.Get("/contact-messages", requireAdmin, h.AdminHandler.ListContactMessages)
	admin.Post("/products/:id/image", requireAdmin, h.AdminHandler.UploadProductImage)
}
