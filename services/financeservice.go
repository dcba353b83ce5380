package services

import (
	"math"

	"frilance/model"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// TaxMode tells how a document's tax amount was produced. Rate-driven tax
// is re-derived whenever the line items change; manual tax stays as typed
// until a new rate is applied.
type TaxMode string

const (
	TaxRateDriven TaxMode = "rate"
	TaxManual     TaxMode = "manual"
)

// DocumentTax couples a tax amount with the mode that produced it, so a
// manually entered amount and a percentage rate can never be active at the
// same time.
type DocumentTax struct {
	Mode   TaxMode
	Rate   decimal.Decimal // only meaningful when Mode == TaxRateDriven
	Amount decimal.Decimal
}

// NewLineItem builds a line with the amount derived from quantity and rate.
// Negative or non-finite input clamps to zero so a typo can never produce a
// negative amount.
func NewLineItem(id, description string, quantity float64, rate float64) model.LineItem {
	item := model.LineItem{
		ItemID:      id,
		Description: description,
		Quantity:    coerceQuantity(quantity),
		Rate:        coerceMoney(rate),
	}
	return RecomputeItem(item)
}

// RecomputeItem restores the amount invariant: amount = quantity * rate,
// after clamping negative quantity or rate to zero.
func RecomputeItem(item model.LineItem) model.LineItem {
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	if item.Rate.IsNegative() {
		item.Rate = decimal.Zero
	}
	item.Amount = item.Rate.Mul(decimal.NewFromInt(item.Quantity))
	return item
}

// Subtotal sums line amounts. An empty collection yields zero.
func Subtotal(items []model.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	return sum
}

// ApplyTaxRate derives tax = round(subtotal * rate / 100), half up. The rate
// is kept so later item edits can re-derive the tax.
func ApplyTaxRate(items []model.LineItem, ratePercent decimal.Decimal) DocumentTax {
	tax := Subtotal(items).Mul(ratePercent).Div(oneHundred).Round(0)
	return DocumentTax{Mode: TaxRateDriven, Rate: ratePercent, Amount: tax}
}

// ApplyManualTax sets an explicit tax amount and clears any rate, disabling
// rate-driven recomputation until a new rate is applied.
func ApplyManualTax(amount decimal.Decimal) DocumentTax {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return DocumentTax{Mode: TaxManual, Amount: amount}
}

// Recompute re-derives a rate-driven tax against the current items. Manual
// tax passes through untouched.
func (t DocumentTax) Recompute(items []model.LineItem) DocumentTax {
	if t.Mode == TaxRateDriven {
		return ApplyTaxRate(items, t.Rate)
	}
	return t
}

// Total is subtotal plus tax; with no items it equals the tax alone.
func Total(items []model.LineItem, tax decimal.Decimal) decimal.Decimal {
	return Subtotal(items).Add(tax)
}

// ResolveTax picks the tax mode for an incoming document edit. An explicit
// rate wins over a manual amount; with neither, the business default rate
// applies. Rates above 100 are accepted as given; negative rates clamp to
// zero like every other money input.
func ResolveTax(items []model.LineItem, ratePercent *float64, manual *float64, defaultRate decimal.Decimal) DocumentTax {
	switch {
	case ratePercent != nil:
		return ApplyTaxRate(items, coerceRate(*ratePercent))
	case manual != nil:
		return ApplyManualTax(coerceMoney(*manual))
	default:
		return ApplyTaxRate(items, defaultRate)
	}
}

func coerceRate(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func coerceQuantity(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return int64(v)
}

func coerceMoney(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
