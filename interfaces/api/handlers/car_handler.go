package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/utils"
)

type CarHandler struct {
	carService services.CarService
}

func NewCarHandler(carService services.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

func (h *CarHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.carService.ListBrands(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.CarBrandsToResponses(brands))
}

// ListModels answers 400 for a non-numeric brand id and an empty list for an unknown one.
func (h *CarHandler) ListModels(c *fiber.Ctx) error {
	brandID, ok := dto.ParseID(c.Params("brandId"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid brand ID")
	}

	carModels, err := h.carService.ListModels(c.UserContext(), brandID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.CarModelsToResponses(carModels))
}
