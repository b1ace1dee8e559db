package models

import (
	"strconv"
	"strings"
)

const (
	PaymentModeCash         = "Cash"
	PaymentModeBankTransfer = "Bank Transfer"
	PaymentModeCheque       = "Cheque"
	PaymentModePOS          = "POS"
)

// WebhookPayload is the inbound webhook body. Only the first item is consumed.
type WebhookPayload struct {
	Items []Transaction `json:"items"`
}

// Transaction is the fixed-shape payload the form source sends per payment.
// All numeric fields arrive as strings or numbers and are coerced once here,
// defaulting to 0, so the rest of the pipeline works with plain float64s.
type Transaction struct {
	TransactionID      string         `json:"Transaction ID"`
	PayableAmount      FlexNumber     `json:"Payable Amount"`
	TotalAmountPaid    FlexNumber     `json:"Total Amount Paid"`
	Discount           FlexNumber     `json:"Discount"`
	PaidByCash         FlexNumber     `json:"Paid by Cash"`
	PaidByBankTransfer FlexNumber     `json:"Paid by Bank Transfer"`
	PaidByCheque       FlexNumber     `json:"Paid by Cheque"`
	PaidByPOS          FlexNumber     `json:"Paid by POS"`
	Services           []LinkedText   `json:"Services (link)"`
	Prices             []LinkedAmount `json:"Prices"`
}

// LinkedText is a linked-record entry carrying a display value.
type LinkedText struct {
	Value string `json:"value"`
}

type LinkedAmount struct {
	Value FlexNumber `json:"value"`
}

// FlexNumber decodes from a JSON number, a numeric string, or null. Anything
// unparseable coerces to 0 rather than failing the whole payload.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(f)
	return nil
}

func (n FlexNumber) Float64() float64 {
	return float64(n)
}

// ServiceLine is one billed service resolved from the parallel
// services/prices sequences.
type ServiceLine struct {
	Description string
	Rate        float64
}

// ServiceLines pairs each services entry with the price at the same index.
// The sequences are assumed index-aligned; a services entry with no matching
// price index gets rate 0, matching the upstream form's behavior.
func (t *Transaction) ServiceLines() []ServiceLine {
	lines := make([]ServiceLine, 0, len(t.Services))
	for i, svc := range t.Services {
		desc := strings.TrimSpace(svc.Value)
		if desc == "" {
			desc = "Service"
		}
		rate := 0.0
		if i < len(t.Prices) {
			rate = t.Prices[i].Value.Float64()
		}
		lines = append(lines, ServiceLine{Description: desc, Rate: rate})
	}
	return lines
}

// PaymentMode returns the first payment channel with a positive amount, in
// fixed priority order cash > bank transfer > cheque > POS. Cash is the
// universal fallback when none are positive.
func (t *Transaction) PaymentMode() string {
	switch {
	case t.PaidByCash > 0:
		return PaymentModeCash
	case t.PaidByBankTransfer > 0:
		return PaymentModeBankTransfer
	case t.PaidByCheque > 0:
		return PaymentModeCheque
	case t.PaidByPOS > 0:
		return PaymentModePOS
	default:
		return PaymentModeCash
	}
}
