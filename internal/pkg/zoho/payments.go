package zoho

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/nocodeinfolab/zoho-payment/app/models"
)

// PaymentOutcome tells the caller how a payment request was settled.
type PaymentOutcome string

const (
	// OutcomePaid means a customer payment was recorded against the invoice.
	OutcomePaid PaymentOutcome = "paid"
	// OutcomeCredited means the amount exceeded the invoice balance and the
	// excess was absorbed by a credit note instead; no payment was recorded.
	OutcomeCredited PaymentOutcome = "credited_overpayment"
)

// CreatePayment records a payment of amount against the invoice, refetching
// it first to read the current customer id and balance. When the amount
// exceeds the balance the overage becomes a credit note for the invoice's
// customer and no payment is created. The two round trips carry no
// transactional guarantee; the balance may have moved in between.
func (c *Client) CreatePayment(ctx context.Context, invoiceID string, amount float64, transactionID string, tx *models.Transaction) (PaymentOutcome, error) {
	invoice, err := c.GetInvoice(ctx, invoiceID)
	if err != nil {
		return "", err
	}

	if amount > invoice.Balance {
		overage := amount - invoice.Balance
		if err := c.CreateCreditNote(ctx, invoice.CustomerID, overage, transactionID); err != nil {
			return "", err
		}
		c.log.Info().
			Str("invoice_id", invoiceID).
			Float64("amount", amount).
			Float64("balance", invoice.Balance).
			Float64("overage", overage).
			Msg("payment exceeds balance, credit note created")
		return OutcomeCredited, nil
	}

	body := createPaymentRequest{
		CustomerID:      invoice.CustomerID,
		PaymentMode:     tx.PaymentMode(),
		Amount:          math.Min(amount, invoice.Balance),
		Date:            time.Now().Format(time.DateOnly),
		ReferenceNumber: transactionID,
		Invoices: []paymentInvoiceAllocation{
			{InvoiceID: invoiceID, AmountApplied: math.Min(amount, invoice.Balance)},
		},
	}

	var out paymentResponse
	if err := c.do(ctx, http.MethodPost, "/customerpayments", nil, body, &out); err != nil {
		return "", fmt.Errorf("payment creation for invoice %s failed: %w", invoiceID, err)
	}

	c.log.Info().
		Str("invoice_id", invoiceID).
		Str("payment_id", out.Payment.PaymentID).
		Str("mode", body.PaymentMode).
		Float64("amount", body.Amount).
		Msg("payment recorded")
	return OutcomePaid, nil
}

// CreateCreditNote issues a single-line credit note for the customer, dated
// today and numbered CN-<transactionID>.
func (c *Client) CreateCreditNote(ctx context.Context, customerID string, amount float64, transactionID string) error {
	body := createCreditNoteRequest{
		CustomerID:       customerID,
		CreditNoteNumber: "CN-" + transactionID,
		Date:             time.Now().Format(time.DateOnly),
		ReferenceNumber:  transactionID,
		LineItems: []InvoiceLineItem{
			{
				Description: "Overpayment on transaction " + transactionID,
				Rate:        amount,
				Quantity:    1,
			},
		},
	}

	var out creditNoteResponse
	if err := c.do(ctx, http.MethodPost, "/creditnotes", nil, body, &out); err != nil {
		return fmt.Errorf("credit note creation for customer %s failed: %w", customerID, err)
	}

	c.log.Info().
		Str("customer_id", customerID).
		Str("creditnote_id", out.CreditNote.CreditNoteID).
		Float64("amount", amount).
		Msg("credit note created")
	return nil
}
