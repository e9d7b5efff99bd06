package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
}

func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Category slug is required")
	}

	category, err := h.categoryService.GetBySlug(c.UserContext(), slug)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}
