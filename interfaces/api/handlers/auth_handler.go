package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/dto"
	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge int // seconds
}

type AuthHandler struct {
	authService services.AdminAuthService
	cookie      CookieOptions
}

func NewAuthHandler(authService services.AdminAuthService, cookie CookieOptions) *AuthHandler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = int((24 * time.Hour).Seconds())
	}
	return &AuthHandler{authService: authService, cookie: cookie}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.AdminLoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, admin, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return serviceError(c, err)
	}

	c.Cookie(h.sessionCookie(token, h.cookie.MaxAge))
	return utils.SuccessResponse(c, dto.AdminLoginResponse{
		Message: "Успешна најава",
		User:    dto.AdminUserToResponse(admin),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.authService.Logout(ctx, c.Cookies(h.cookie.Name)); err != nil {
		logger.ErrorContext(ctx, "Logout failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	c.Cookie(h.sessionCookie("", -1))
	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Успешна одјава"})
}

// Check always answers 200; unauthenticated callers get isAuthenticated=false.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	token := c.Cookies(h.cookie.Name)
	if token == "" {
		return utils.SuccessResponse(c, dto.AuthCheckResponse{})
	}

	admin, err := h.authService.CurrentAdmin(c.UserContext(), token)
	if err != nil {
		return utils.SuccessResponse(c, dto.AuthCheckResponse{})
	}
	return utils.SuccessResponse(c, dto.AuthCheckResponse{
		IsAuthenticated: true,
		User:            dto.AdminUserToResponse(admin),
	})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	} else {
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
