package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/nocodeinfolab/zoho-payment/app/models"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/logger"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/zoho"
)

const (
	msgNoInvoice    = "No existing invoice found. Script stopped."
	msgProcessed    = "Invoice and payment processed successfully."
	msgOverpayment  = "Payment amount exceeds the invoice balance. Credit note created."
	msgWebhookError = "Error processing webhook"
)

type WebhookController struct {
	client *zoho.Client
	log    zerolog.Logger
}

func NewWebhookController(client *zoho.Client) *WebhookController {
	return &WebhookController{
		client: client,
		log:    logger.WithComponent("webhook"),
	}
}

// HandleTransactionWebhook runs the whole sync for one transaction: look up
// the invoice by reference, apply the discount update, then record the
// payment (or a credit note when it overshoots the balance). A transaction
// with no matching invoice and an overpayment are both normal 200 outcomes;
// everything else fails the request with a 500 and the underlying detail.
func (wc *WebhookController) HandleTransactionWebhook(c *fiber.Ctx) error {
	var payload models.WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return wc.fail(c, fmt.Errorf("invalid webhook body: %w", err))
	}
	if len(payload.Items) == 0 {
		return wc.fail(c, errors.New("webhook payload contains no items"))
	}

	tx := payload.Items[0]
	transactionID := strings.TrimSpace(tx.TransactionID)
	if transactionID == "" {
		return wc.fail(c, errors.New("transaction is missing its Transaction ID"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	invoice, err := wc.client.FindInvoiceByReference(ctx, transactionID)
	if err != nil {
		return wc.fail(c, err)
	}
	if invoice == nil {
		wc.log.Info().Str("transaction_id", transactionID).Msg("no invoice for transaction reference")
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msgNoInvoice})
	}

	if _, err := wc.client.UpdateInvoice(ctx, invoice.InvoiceID, &tx); err != nil {
		return wc.fail(c, err)
	}

	if paid := tx.TotalAmountPaid.Float64(); paid > 0 {
		outcome, err := wc.client.CreatePayment(ctx, invoice.InvoiceID, paid, transactionID, &tx)
		if err != nil {
			return wc.fail(c, err)
		}
		if outcome == zoho.OutcomeCredited {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msgOverpayment})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msgProcessed})
}

func (wc *WebhookController) fail(c *fiber.Ctx, err error) error {
	wc.log.Error().Err(err).Msg("webhook processing failed")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": msgWebhookError,
		"error":   err.Error(),
	})
}
