package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/nocodeinfolab/zoho-payment/app/controllers"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/zoho"
)

type WebhookRouter struct {
	client *zoho.Client
}

func NewWebhookRouter(client *zoho.Client) *WebhookRouter {
	return &WebhookRouter{client: client}
}

func (h *WebhookRouter) InstallRouter(app *fiber.App) {
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "zoho-payment webhook receiver",
		})
	})

	controller := controllers.NewWebhookController(h.client)
	app.Post("/webhook", controller.HandleTransactionWebhook)
}
