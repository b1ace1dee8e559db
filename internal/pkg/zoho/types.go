package zoho

// Invoice is the subset of Zoho Books invoice fields this service reads.
type Invoice struct {
	InvoiceID       string  `json:"invoice_id"`
	InvoiceNumber   string  `json:"invoice_number"`
	ReferenceNumber string  `json:"reference_number"`
	CustomerID      string  `json:"customer_id"`
	Status          string  `json:"status"`
	Total           float64 `json:"total"`
	Balance         float64 `json:"balance"`
}

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Rate        float64 `json:"rate"`
	Quantity    float64 `json:"quantity"`
}

// apiEnvelope is the common code/message pair Zoho wraps every response in.
// Code 0 means success; non-zero codes accompany HTTP error statuses.
type apiEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type invoiceListResponse struct {
	Code     int       `json:"code"`
	Message  string    `json:"message"`
	Invoices []Invoice `json:"invoices"`
}

type invoiceResponse struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Invoice Invoice `json:"invoice"`
}

type updateInvoiceRequest struct {
	LineItems           []InvoiceLineItem `json:"line_items"`
	Total               float64           `json:"total"`
	Discount            float64           `json:"discount"`
	IsDiscountBeforeTax bool              `json:"is_discount_before_tax"`
	DiscountType        string            `json:"discount_type"`
	Reason              string            `json:"reason"`
}

type paymentInvoiceAllocation struct {
	InvoiceID     string  `json:"invoice_id"`
	AmountApplied float64 `json:"amount_applied"`
}

type createPaymentRequest struct {
	CustomerID      string                     `json:"customer_id"`
	PaymentMode     string                     `json:"payment_mode"`
	Amount          float64                    `json:"amount"`
	Date            string                     `json:"date"`
	ReferenceNumber string                     `json:"reference_number"`
	Invoices        []paymentInvoiceAllocation `json:"invoices"`
}

type paymentResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Payment struct {
		PaymentID string `json:"payment_id"`
	} `json:"payment"`
}

type createCreditNoteRequest struct {
	CustomerID       string            `json:"customer_id"`
	CreditNoteNumber string            `json:"creditnote_number"`
	Date             string            `json:"date"`
	ReferenceNumber  string            `json:"reference_number"`
	LineItems        []InvoiceLineItem `json:"line_items"`
}

type creditNoteResponse struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	CreditNote struct {
		CreditNoteID string `json:"creditnote_id"`
	} `json:"creditnote"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Error       string `json:"error"`
}
