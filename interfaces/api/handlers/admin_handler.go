package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/models"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

const defaultMaxUploadSize = 10 << 20

type AdminHandler struct {
	orderService   services.OrderService
	contactService services.ContactService
	productService services.ProductService
	maxUploadSize  int64
}

func NewAdminHandler(orderService services.OrderService, contactService services.ContactService, productService services.ProductService, maxUploadSize int64) *AdminHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = defaultMaxUploadSize
	}
	return &AdminHandler{
		orderService:   orderService,
		contactService: contactService,
		productService: productService,
		maxUploadSize:  maxUploadSize,
	}
}

// ListOrders returns every order, newest first, with its lines and products.
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.OrdersToOrderResponses(orders))
}

func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := dto.ParseID(c.Params("id"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	var req dto.UpdateOrderStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	order, err := h.orderService.UpdateStatus(ctx, id, models.OrderStatus(req.Status))
	if err != nil {
		return serviceError(c, err)
	}

	if admin, err := utils.GetAdminFromContext(c); err == nil {
		logger.InfoContext(ctx, "Order status changed by admin", "order_id", id, "status", req.Status, "admin", admin.Username)
	}
	return utils.SuccessResponse(c, dto.OrderToOrderResponse(order))
}

func (h *AdminHandler) ExportOrders(c *fiber.Ctx) error {
	var buf bytes.Buffer
	ext, contentType, err := h.orderService.Export(c.UserContext(), &buf)
	if err != nil {
		return serviceError(c, err)
	}

	filename := fmt.Sprintf("orders-%s.%s", time.Now().UTC().Format("20060102-1504"), ext)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *AdminHandler) ListContactMessages(c *fiber.Ctx) error {
	messages, err := h.contactService.List(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.ContactMessagesToResponses(messages))
}

// UploadProductImage accepts a multipart "image" field and stores it as the product image.
func (h *AdminHandler) UploadProductImage(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := dto.ParseID(c.Params("id"))
	if !ok {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "Image file is required")
	}
	if header.Size > h.maxUploadSize {
		return utils.BadRequestResponse(c, fmt.Sprintf("Image exceeds %d bytes", h.maxUploadSize))
	}

	file, err := header.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded image", "product_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	product, err := h.productService.UploadImage(ctx, id, file, header.Filename, header.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, dto.UploadImageResponse{ProductID: product.ID, ImageURL: product.ImageURL})
}
