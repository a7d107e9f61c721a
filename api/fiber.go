package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/igniteworks/cert-ignite-api/api/handler"
	"github.com/igniteworks/cert-ignite-api/api/middleware"
	"github.com/igniteworks/cert-ignite-api/api/routes"
	"github.com/igniteworks/cert-ignite-api/common"
)

func InitFiber() {
	cfg := fiber.Config{
		AppName:       "cert-ignite api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
