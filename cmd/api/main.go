package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/DsDac0/Website/interfaces/api/handlers"
	"github.com/DsDac0/Website/interfaces/api/middleware"
	"github.com/DsDac0/Website/interfaces/api/routes"
	"github.com/DsDac0/Website/pkg/di"
	"github.com/DsDac0/Website/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
		BodyLimit:    int(cfg.Storage.MaxUploadSize) + 1<<20, // image upload plus multipart overhead

		EnablePrintRoutes: cfg.IsDevelopment(),
	})

	setupGracefulShutdown(app, container)

	// request id must come before the logger
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.MetricsMiddleware(container.Metrics))
	app.Use(middleware.CorsMiddleware(cfg.App.CorsOrigins))

	h := handlers.NewHandlers(container.GetHandlerServices())

	staticDir := ""
	if cfg.Storage.Type != "s3" {
		staticDir = cfg.Storage.BasePath
	}
	routes.SetupRoutes(app, h, routes.Options{
		AuthService: container.AdminAuthService,
		CookieName:  cfg.Session.CookieName,
		StaticDir:   staticDir,
		ServiceName: cfg.App.Name,
	})

	port := cfg.App.Port
	logger.Info("Server starting",
		"port", port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(app *fiber.App, container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.Shutdown(); err != nil {
			logger.Error("Error shutting down server", "error", err)
		}
		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
