package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/utils"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateContactMessageRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	message, err := h.contactService.Submit(c.UserContext(), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.CreatedResponse(c, dto.ContactMessageToResponse(message))
}
