package billing

import (
	"github.com/shopspring/decimal"
)

// Units a line item can be sold in. Sheet goods priced by area use UnitSqFt.
const (
	UnitPcs    = "Pcs"
	UnitKg     = "Kg"
	UnitSqFt   = "Sq-Ft"
	UnitMtr    = "Mtr"
	UnitBundle = "Bundle"
	UnitFt     = "ft"
)

var hundred = decimal.NewFromInt(100)

// Units lists every accepted unit, in display order.
func Units() []string {
	return []string{UnitPcs, UnitKg, UnitSqFt, UnitMtr, UnitBundle, UnitFt}
}

// ValidUnit reports whether u is one of the accepted units.
func ValidUnit(u string) bool {
	switch u {
	case UnitPcs, UnitKg, UnitSqFt, UnitMtr, UnitBundle, UnitFt:
		return true
	}
	return false
}

// LineItem is one row of a bill. Amount is always derived from Qty, Price and
// ItemPercent; it is never authoritative on its own.
type LineItem struct {
	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	ItemPercent decimal.Decimal `json:"itemPercent"`
	Amount      decimal.Decimal `json:"amount"`

	// Ply metadata, descriptive only: the derived Qty already encodes it.
	IsPly  bool            `json:"isPly,omitempty"`
	Height decimal.Decimal `json:"height,omitempty"`
	Width  decimal.Decimal `json:"width,omitempty"`
	Pieces int             `json:"pieces,omitempty"`
}

// DeriveLineAmount computes qty*price, then applies itemPercent as a markup
// (positive) or discount (negative) on that row only. Callers are expected to
// reject percents outside [-100, 1000] before getting here; the function
// itself is total and computes whatever it is given.
func DeriveLineAmount(qty, price, itemPercent decimal.Decimal) decimal.Decimal {
	amount := qty.Mul(price)
	if itemPercent.IsZero() {
		return amount
	}
	return amount.Add(amount.Mul(itemPercent).Div(hundred))
}

// DiscountFromPercent converts a whole-bill percentage into a discount amount.
func DiscountFromPercent(subTotal, percent decimal.Decimal) decimal.Decimal {
	return subTotal.Mul(percent).Div(hundred)
}

// DiscountFromAmount recovers the display percentage for a discount amount,
// rounded to the nearest integer percent. The stored discount amount stays
// exact; this is the approximation shown next to it.
func DiscountFromAmount(subTotal, discount decimal.Decimal) decimal.Decimal {
	if !subTotal.IsPositive() {
		return decimal.Zero
	}
	return discount.Div(subTotal).Mul(hundred).Round(0)
}

// Totals is the derived money rollup of a bill.
type Totals struct {
	SubTotal decimal.Decimal `json:"subTotal"`
	Total    decimal.Decimal `json:"total"`
	Balance  decimal.Decimal `json:"balance"`
}

// ComputeTotals rolls items up into subtotal, total and balance. Each item's
// amount is rederived from its inputs, so stale amounts never leak through.
// Total and balance are clamped at zero even when the discount exceeds the
// subtotal or the received amount exceeds the total.
func ComputeTotals(items []LineItem, discount, received decimal.Decimal) Totals {
	subTotal := decimal.Zero
	for _, it := range items {
		subTotal = subTotal.Add(DeriveLineAmount(it.Qty, it.Price, it.ItemPercent))
	}

	total := subTotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	balance := total.Sub(received)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	return Totals{SubTotal: subTotal, Total: total, Balance: balance}
}

// ApplyPercentToAll bakes percent into the unit price of every item that has a
// price, and resets that item's own percent to zero so recomputation cannot
// apply it twice. Items priced at zero are left untouched. The input slice is
// not modified.
func ApplyPercentToAll(items []LineItem, percent decimal.Decimal) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	for i := range out {
		if !out[i].Price.IsPositive() {
			continue
		}
		adjustment := out[i].Price.Mul(percent).Div(hundred)
		out[i].Price = out[i].Price.Add(adjustment)
		out[i].ItemPercent = decimal.Zero
		out[i].Amount = DeriveLineAmount(out[i].Qty, out[i].Price, out[i].ItemPercent)
	}
	return out
}
