package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/pkg/logger"
	"github.com/DsDac0/Website/pkg/utils"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest, fiber.StatusRequestEntityTooLarge:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusUnauthorized:
				errCode = utils.ErrCodeUnauthorized
			case fiber.StatusForbidden:
				errCode = utils.ErrCodeForbidden
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		// 5xx answers carry the request id so a report can be matched to the log line.
		var details any
		if code >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
			if requestID := GetRequestIDFromContext(c); requestID != "" {
				details = fiber.Map{"requestId": requestID}
			}
		}

		return utils.ErrorResponse(c, code, errCode, message, details)
	}
}
