package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
)

func SetupCatalogRoutes(api fiber.Router, h *handlers.Handlers) {
	api.Get("/categories", h.CategoryHandler.List)
	api.Get("/categories/:slug", h.CategoryHandler.GetBySlug)

	api.Get("/car-brands", h.CarHandler.ListBrands)
	api.Get("/car-models/:brandId", h.CarHandler.ListModels)

	products := api.Group("/products")
	products.Get("/", h.ProductHandler.List)
	products.Get("/featured", h.ProductHandler.Featured)
	products.Get("/:id", h.ProductHandler.GetByID)
}
