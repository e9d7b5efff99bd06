package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newErrorApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestIDMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db down") })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		wantStatus    int
		wantCode      string
		wantRequestID bool
	}{
		{"plain error is a 500 with request id", "/boom", fiber.StatusInternalServerError, "INTERNAL_ERROR", true},
		{"fiber error keeps its status", "/missing", fiber.StatusNotFound, "NOT_FOUND", false},
	}

	app := newErrorApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set(RequestIDHeader, "req-123")
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if got := resp.Header.Get(RequestIDHeader); got != "req-123" {
				t.Errorf("request id header = %q", got)
			}

			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.Error.Code != tt.wantCode {
				t.Errorf("unexpected body %+v", body)
			}
			if got := body.Error.Details["requestId"]; (got == "req-123") != tt.wantRequestID {
				t.Errorf("details requestId = %q, want present=%v", got, tt.wantRequestID)
			}
		})
	}
}
