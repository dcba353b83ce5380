package model

import "github.com/shopspring/decimal"

// Settings is the single-row business profile. DefaultTaxRate is the
// ambient fallback used when a document sets a rate-driven tax without an
// explicit rate.
type Settings struct {
	BusinessName    string          `json:"businessName"`
	BusinessEmail   string          `json:"businessEmail"`
	BusinessAddress string          `json:"businessAddress"`
	BusinessPhone   string          `json:"businessPhone"`
	DefaultTaxRate  decimal.Decimal `json:"defaultTaxRate"`
	Currency        string          `json:"currency"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultTaxRate: decimal.NewFromInt(11),
		Currency:       "IDR",
	}
}
