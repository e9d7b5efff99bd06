package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

// RequireAdmin validates the admin session cookie and stores the admin in locals.
func RequireAdmin(auth services.AdminAuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Not authenticated")
		}

		admin, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			if !errors.Is(err, services.ErrUnauthorized) {
				logger.ErrorContext(c.UserContext(), "Admin session check failed", "error", err)
			}
			return utils.UnauthorizedResponse(c, "Not authenticated")
		}

		c.Locals(utils.AdminLocalsKey, admin)
		return c.Next()
	}
}
