package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "plain number", in: `200`, want: 200},
		{name: "decimal number", in: `49.5`, want: 49.5},
		{name: "numeric string", in: `"250"`, want: 250},
		{name: "decimal string", in: `"10.25"`, want: 10.25},
		{name: "empty string defaults to zero", in: `""`, want: 0},
		{name: "garbage defaults to zero", in: `"abc"`, want: 0},
		{name: "null defaults to zero", in: `null`, want: 0},
		{name: "whitespace string defaults to zero", in: `"  "`, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var n FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tc.in), &n))
			assert.Equal(t, tc.want, n.Float64())
		})
	}
}

func TestTransactionPaymentMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{
			name: "cash wins over simultaneous bank transfer",
			tx:   Transaction{PaidByCash: 50, PaidByBankTransfer: 100},
			want: PaymentModeCash,
		},
		{
			name: "bank transfer when cash is zero",
			tx:   Transaction{PaidByBankTransfer: 100, PaidByCheque: 30},
			want: PaymentModeBankTransfer,
		},
		{
			name: "cheque before pos",
			tx:   Transaction{PaidByCheque: 30, PaidByPOS: 30},
			want: PaymentModeCheque,
		},
		{
			name: "pos only",
			tx:   Transaction{PaidByPOS: 80},
			want: PaymentModePOS,
		},
		{
			name: "cash fallback when nothing is positive",
			tx:   Transaction{},
			want: PaymentModeCash,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.tx.PaymentMode())
		})
	}
}

func TestTransactionServiceLines(t *testing.T) {
	t.Parallel()

	tx := Transaction{
		Services: []LinkedText{{Value: "Cleaning"}, {Value: ""}, {Value: "Repair"}},
		Prices:   []LinkedAmount{{Value: 200}, {Value: 75}},
	}

	lines := tx.ServiceLines()
	require.Len(t, lines, 3)

	assert.Equal(t, ServiceLine{Description: "Cleaning", Rate: 200}, lines[0])
	// Empty service descriptions fall back to the generic label.
	assert.Equal(t, ServiceLine{Description: "Service", Rate: 75}, lines[1])
	// A services entry with no price at the same index gets rate 0.
	assert.Equal(t, ServiceLine{Description: "Repair", Rate: 0}, lines[2])
}

func TestWebhookPayloadUnmarshal(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"items": [{
			"Transaction ID": "T100",
			"Total Amount Paid": "50",
			"Payable Amount": "200",
			"Discount": "10",
			"Paid by Cash": "50",
			"Services (link)": [{"value": "Cleaning"}],
			"Prices": [{"value": "200"}]
		}]
	}`)

	var payload WebhookPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Items, 1)

	tx := payload.Items[0]
	assert.Equal(t, "T100", tx.TransactionID)
	assert.Equal(t, 50.0, tx.TotalAmountPaid.Float64())
	assert.Equal(t, 200.0, tx.PayableAmount.Float64())
	assert.Equal(t, 10.0, tx.Discount.Float64())
	assert.Equal(t, PaymentModeCash, tx.PaymentMode())
	require.Len(t, tx.ServiceLines(), 1)
	assert.Equal(t, ServiceLine{Description: "Cleaning", Rate: 200}, tx.ServiceLines()[0])
}
