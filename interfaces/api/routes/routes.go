package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/domain/services"
	"github.com/DsDac0/Website/interfaces/api/handlers"
	"github.com/DsDac0/Website/interfaces/api/middleware"
)

// Options carries what the route groups need besides the handlers.
type Options struct {
	AuthService services.AdminAuthService
	CookieName  string
	StaticDir   string // served under /files when set
	ServiceName string
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	SetupHealthRoutes(app, opts.ServiceName)

	requireAdmin := middleware.RequireAdmin(opts.AuthService, opts.CookieName)

	api := app.Group("/api")
	SetupCatalogRoutes(api, h)
	SetupCartRoutes(api, h)
	SetupOrderRoutes(api, h)
	SetupContactRoutes(api, h)
	SetupAdminRoutes(api, h, requireAdmin)

	SetupPaymentRoutes(app, api, h)
	SetupWebSocketRoutes(app, h, requireAdmin)

	if opts.StaticDir != "" {
		app.Static("/files", opts.StaticDir)
	}
}
