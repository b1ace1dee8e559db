package zoho

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nocodeinfolab/zoho-payment/app/models"
)

// FindInvoiceByReference looks up the invoice whose reference number equals
// the given transaction id. The list endpoint filters server-side, but the
// result is re-checked for an exact match in case the filter is fuzzy.
// Returns (nil, nil) when no invoice matches; that is an expected outcome,
// not an error.
func (c *Client) FindInvoiceByReference(ctx context.Context, reference string) (*Invoice, error) {
	query := url.Values{}
	query.Set("reference_number", reference)

	var out invoiceListResponse
	if err := c.do(ctx, http.MethodGet, "/invoices", query, nil, &out); err != nil {
		return nil, fmt.Errorf("invoice lookup for reference %q failed: %w", reference, err)
	}

	for i := range out.Invoices {
		if out.Invoices[i].ReferenceNumber == reference {
			return &out.Invoices[i], nil
		}
	}
	return nil, nil
}

// GetInvoice fetches a single invoice, including its current customer id and
// balance.
func (c *Client) GetInvoice(ctx context.Context, invoiceID string) (*Invoice, error) {
	var out invoiceResponse
	if err := c.do(ctx, http.MethodGet, "/invoices/"+invoiceID, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("invoice %s fetch failed: %w", invoiceID, err)
	}
	return &out.Invoice, nil
}

// UpdateInvoice rewrites the invoice's line items from the transaction's
// services/prices sequences, sets its total to the payable amount and applies
// the transaction's discount at entity level, before tax. Zoho requires a
// reason when editing an invoice that has already been sent.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID string, tx *models.Transaction) (*Invoice, error) {
	serviceLines := tx.ServiceLines()
	lineItems := make([]InvoiceLineItem, 0, len(serviceLines))
	for _, line := range serviceLines {
		lineItems = append(lineItems, InvoiceLineItem{
			Description: line.Description,
			Rate:        line.Rate,
			Quantity:    1,
		})
	}

	body := updateInvoiceRequest{
		LineItems:           lineItems,
		Total:               tx.PayableAmount.Float64(),
		Discount:            tx.Discount.Float64(),
		IsDiscountBeforeTax: true,
		DiscountType:        "entity_level",
		Reason:              "Synced from payment transaction " + tx.TransactionID,
	}

	var out invoiceResponse
	if err := c.do(ctx, http.MethodPut, "/invoices/"+invoiceID, nil, body, &out); err != nil {
		return nil, fmt.Errorf("invoice %s update failed: %w", invoiceID, err)
	}

	c.log.Info().
		Str("invoice_id", invoiceID).
		Float64("total", body.Total).
		Float64("discount", body.Discount).
		Msg("invoice updated")
	return &out.Invoice, nil
}
