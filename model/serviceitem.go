package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceItem is one offering of the service catalog, reusable as an
// invoice or quotation line.
type ServiceItem struct {
	ServiceID   string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
