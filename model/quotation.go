package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuotationStatus string

const (
	QuotationDraft    QuotationStatus = "draft"
	QuotationSent     QuotationStatus = "sent"
	QuotationAccepted QuotationStatus = "accepted"
	QuotationRejected QuotationStatus = "rejected"
)

func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationDraft, QuotationSent, QuotationAccepted, QuotationRejected:
		return true
	}
	return false
}

type Quotation struct {
	QuotationID     string           `json:"id"`
	QuotationNumber string           `json:"quotationNumber"`
	ProjectID       string           `json:"projectId,omitempty"`
	ProjectName     string           `json:"projectName,omitempty"`
	ClientID        string           `json:"clientId,omitempty"`
	ClientName      string           `json:"clientName,omitempty"`
	Items           []LineItem       `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Tax             decimal.Decimal  `json:"tax"`
	TaxRate         *decimal.Decimal `json:"taxRate,omitempty"`
	Total           decimal.Decimal  `json:"total"`
	Status          QuotationStatus  `json:"status"`
	ValidUntil      *time.Time       `json:"validUntil,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
