package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/nocodeinfolab/zoho-payment/internal/pkg/config"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/env"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/logger"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/router"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/zoho"
)

func main() {
	app, cfg := NewApplication()
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func NewApplication() (*fiber.App, *config.Config) {
	env.SetupEnvFile()

	format := "json"
	if env.IsDev() {
		format = "console"
	}
	if err := logger.Setup(logger.Config{
		Level:  env.GetEnv("LOG_LEVEL", "info"),
		Format: format,
	}); err != nil {
		log.Fatal().Err(err).Msg("invalid logging configuration")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client := zoho.NewClient(cfg)

	app := fiber.New(fiber.Config{
		AppName: "zoho-payment",
	})

	// recovery and logging
	app.Use(recover.New(), fiberlogger.New())

	// ROUTER
	router.InstallRouter(app, client)

	return app, cfg
}
