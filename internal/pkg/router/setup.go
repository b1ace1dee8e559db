package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nocodeinfolab/zoho-payment/internal/pkg/zoho"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, client *zoho.Client) {
	setup(app, NewWebhookRouter(client))
}
func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
