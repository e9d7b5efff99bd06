package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List filters the catalog by the query string; all given filters must match.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var query dto.ProductListQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	filter, bad := query.ToFilter()
	if bad != "" {
		return utils.ValidationErrorResponse(c, map[string]string{bad: "must be a positive integer"})
	}

	products, err := h.productService.List(c.UserContext(), filter)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductsToProductResponses(products))
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	products, err := h.productService.Featured(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductsToProductResponses(products))
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := dto.ParseID(c.Params("id"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.productService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}
