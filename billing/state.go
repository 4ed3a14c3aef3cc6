package billing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Customer is the party a bill is made out to.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Snapshot is the full state of a bill under construction. Every update
// returns a new Snapshot with the derived fields (item amounts, subtotal,
// total, balance) recomputed, so a Snapshot can never carry stale totals.
type Snapshot struct {
	InvoiceNo int             `json:"invoiceNo"`
	Date      string          `json:"date"`
	Customer  Customer        `json:"customer"`
	Items     []LineItem      `json:"items"`
	SubTotal  decimal.Decimal `json:"subTotal"`
	// DiscountPercent is the display approximation; Discount is the exact
	// amount that participates in the total.
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	Received        decimal.Decimal `json:"received"`
	Balance         decimal.Decimal `json:"balance"`
}

// NewSnapshot returns an empty bill for the given date.
func NewSnapshot(invoiceNo int, date string) Snapshot {
	return Snapshot{InvoiceNo: invoiceNo, Date: date}
}

// Rebuild rederives every item amount and the money rollup of a snapshot
// assembled from raw inputs. Ply detection is deliberately not rerun here:
// it fires on name edits, not on save, so a manually corrected quantity on a
// ply-named row survives persistence.
func Rebuild(s Snapshot) Snapshot {
	return s.recompute(s.Items)
}

// ValidateFinalize reports why a snapshot cannot become a finalized bill.
// Finalization needs a positive invoice number, a date, a named customer and
// at least one item. Money fields need no check here: they are derived and
// clamped.
func (s Snapshot) ValidateFinalize() error {
	if s.InvoiceNo <= 0 {
		return errors.New("invoice number required")
	}
	if strings.TrimSpace(s.Date) == "" {
		return errors.New("date required")
	}
	if strings.TrimSpace(s.Customer.Name) == "" {
		return errors.New("customer name required")
	}
	if len(s.Items) == 0 {
		return errors.New("at least one item required")
	}
	return nil
}

// recompute rederives every item amount and the money rollup. The items slice
// is replaced, never mutated in place.
func (s Snapshot) recompute(items []LineItem) Snapshot {
	out := make([]LineItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Amount = DeriveLineAmount(out[i].Qty, out[i].Price, out[i].ItemPercent)
	}
	totals := ComputeTotals(out, s.Discount, s.Received)
	s.Items = out
	s.SubTotal = totals.SubTotal
	s.Total = totals.Total
	s.Balance = totals.Balance
	return s
}

// AddItem appends an item. Ply detection runs on the entered name: on a match
// the quantity is derived from the dimensions and the unit forced to Sq-Ft.
func (s Snapshot) AddItem(item LineItem) Snapshot {
	item = applyPly(item)
	return s.recompute(append(s.Items, item))
}

// UpdateItem replaces the item at index. Ply detection reruns only when the
// product name actually changed; editing quantity or price on an expanded ply
// row does not clobber the manual edit.
func (s Snapshot) UpdateItem(index int, item LineItem) Snapshot {
	if index < 0 || index >= len(s.Items) {
		return s
	}
	if item.ProductName != s.Items[index].ProductName {
		item = applyPly(item)
	}
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	items[index] = item
	return s.recompute(items)
}

// RemoveItem drops the item at index, preserving the order of the rest.
func (s Snapshot) RemoveItem(index int) Snapshot {
	if index < 0 || index >= len(s.Items) {
		return s
	}
	items := make([]LineItem, 0, len(s.Items)-1)
	items = append(items, s.Items[:index]...)
	items = append(items, s.Items[index+1:]...)
	return s.recompute(items)
}

// SetCustomer replaces the customer fields.
func (s Snapshot) SetCustomer(c Customer) Snapshot {
	s.Customer = c
	return s
}

// SetDiscountPercent stores the percentage and rederives the linked amount
// from the current subtotal.
func (s Snapshot) SetDiscountPercent(percent decimal.Decimal) Snapshot {
	s.DiscountPercent = percent
	s.Discount = DiscountFromPercent(s.SubTotal, percent)
	return s.recompute(s.Items)
}

// SetDiscountAmount stores the exact amount and rederives the linked display
// percentage from the current subtotal.
func (s Snapshot) SetDiscountAmount(amount decimal.Decimal) Snapshot {
	s.Discount = amount
	s.DiscountPercent = DiscountFromAmount(s.SubTotal, amount)
	return s.recompute(s.Items)
}

// SetReceived stores the received amount and rederives the balance.
func (s Snapshot) SetReceived(received decimal.Decimal) Snapshot {
	s.Received = received
	return s.recompute(s.Items)
}

// ApplyPercentToAll bakes a one-shot percentage into every priced item. See
// ApplyPercentToAll in compute.go for the non-compounding guarantee.
func (s Snapshot) ApplyPercentToAll(percent decimal.Decimal) Snapshot {
	return s.recompute(ApplyPercentToAll(s.Items, percent))
}
