package dto

// LineItemInput carries a row as edited in the form. Amount is never
// accepted from the client; it is always re-derived from quantity and rate.
type LineItemInput struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// InvoiceRequest covers create and update. TaxRate wins over Tax when both
// are present; a manual Tax clears the rate. When neither is given the
// default tax rate from settings applies.
type InvoiceRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	ProjectID     string          `json:"projectId"`
	ClientID      string          `json:"clientId"`
	Items         []LineItemInput `json:"items"`
	TaxRate       *float64        `json:"taxRate"`
	Tax           *float64        `json:"tax"`
	Status        string          `json:"status"`
	DueDate       string          `json:"dueDate"`
}

type QuotationRequest struct {
	QuotationNumber string          `json:"quotationNumber" binding:"required"`
	ProjectID       string          `json:"projectId"`
	ClientID        string          `json:"clientId"`
	Items           []LineItemInput `json:"items"`
	TaxRate         *float64        `json:"taxRate"`
	Tax             *float64        `json:"tax"`
	Status          string          `json:"status"`
	ValidUntil      string          `json:"validUntil"`
}
