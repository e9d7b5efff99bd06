package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/ports"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

// serviceError maps domain errors onto the response envelope. Anything unknown is a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		return utils.NotFoundResponse(c, "Category not found")
	case errors.Is(err, services.ErrBrandNotFound):
		return utils.NotFoundResponse(c, "Car brand not found")
	case errors.Is(err, services.ErrProductNotFound):
		return utils.NotFoundResponse(c, "Product not found")
	case errors.Is(err, services.ErrCartItemNotFound):
		return utils.NotFoundResponse(c, "Cart item not found")
	case errors.Is(err, services.ErrOrderNotFound):
		return utils.NotFoundResponse(c, "Order not found")
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrUnsupportedImage):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrAdminInactive):
		return utils.UnauthorizedResponse(c, "Invalid username or password")
	case errors.Is(err, services.ErrUnauthorized):
		return utils.UnauthorizedResponse(c, "Not authenticated")
	case errors.Is(err, ports.ErrPaymentNotConfigured), errors.Is(err, ports.ErrExportUnavailable):
		return utils.NotConfiguredResponse(c, err.Error())
	}

	logger.ErrorContext(c.UserContext(), "Request failed", "path", c.Path(), "error", err)
	return utils.InternalServerErrorResponse(c)
}

// bindAndValidate parses the JSON body into req and answers 400 on failure.
// It returns false when a response has already been written.
func bindAndValidate(c *fiber.Ctx, req any) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		logger.WarnContext(c.UserContext(), "Invalid request body", "path", c.Path(), "error", err)
		return false, utils.BadRequestResponse(c, "Invalid request body")
	}
	if n, ok := req.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if err := utils.ValidateStruct(req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(c.UserContext(), "Validation failed", "path", c.Path(), "errors", fieldErrors)
		return false, utils.ValidationErrorResponse(c, fieldErrors)
	}
	return true, nil
}
