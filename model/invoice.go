package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// LineItem is one billable row of an invoice or quotation.
// Amount is derived from Quantity and Rate and never edited directly.
type LineItem struct {
	ItemID      string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

type Invoice struct {
	InvoiceID     string           `json:"id"`
	InvoiceNumber string           `json:"invoiceNumber"`
	ProjectID     string           `json:"projectId,omitempty"`
	ProjectName   string           `json:"projectName,omitempty"`
	ClientID      string           `json:"clientId,omitempty"`
	ClientName    string           `json:"clientName,omitempty"`
	Items         []LineItem       `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	Tax           decimal.Decimal  `json:"tax"`
	TaxRate       *decimal.Decimal `json:"taxRate,omitempty"`
	Total         decimal.Decimal  `json:"total"`
	Status        InvoiceStatus    `json:"status"`
	DueDate       *time.Time       `json:"dueDate,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	PaidAt        *time.Time       `json:"paidAt,omitempty"`
}
