package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"timberbill-backend/billing"
)

// Draft is a bill in progress. Structurally a Bill, but the invoice number
// is only a suggestion (no uniqueness) and an empty item list is fine. Items
// live in a jsonb snapshot instead of a child table: drafts are rewritten
// wholesale on every save and never queried item-wise.
type Draft struct {
	Id        string `json:"id" gorm:"primaryKey"`
	InvoiceNo int    `json:"invoiceNo"`
	Date      string `json:"date"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	Items datatypes.JSON `json:"items" gorm:"type:jsonb"`

	SubTotal        decimal.Decimal `json:"subTotal" gorm:"type:numeric(12,2)"`
	DiscountPercent decimal.Decimal `json:"discountPercent" gorm:"type:numeric(7,2)"`
	Discount        decimal.Decimal `json:"discount" gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
	Received        decimal.Decimal `json:"received" gorm:"type:numeric(12,2)"`
	Balance         decimal.Decimal `json:"balance" gorm:"type:numeric(12,2)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Draft) BeforeCreate(tx *gorm.DB) (err error) {
	d.Id = uuid.NewString()
	return
}

// Lines decodes the item snapshot. A corrupt snapshot decodes to no items
// rather than failing the whole read.
func (d *Draft) Lines() []billing.LineItem {
	var lines []billing.LineItem
	if len(d.Items) == 0 {
		return nil
	}
	if err := json.Unmarshal(d.Items, &lines); err != nil {
		return nil
	}
	return lines
}

// ApplySnapshot copies a computed bill state onto the draft, encoding the
// items back into the jsonb snapshot.
func (d *Draft) ApplySnapshot(snap billing.Snapshot) error {
	raw, err := json.Marshal(snap.Items)
	if err != nil {
		return err
	}
	d.InvoiceNo = snap.InvoiceNo
	d.Date = snap.Date
	d.CustomerName = snap.Customer.Name
	d.CustomerPhone = snap.Customer.Phone
	d.Items = datatypes.JSON(raw)
	d.SubTotal = snap.SubTotal
	d.DiscountPercent = snap.DiscountPercent
	d.Discount = snap.Discount
	d.Total = snap.Total
	d.Received = snap.Received
	d.Balance = snap.Balance
	return nil
}

// Snapshot rebuilds the computed bill state from the stored draft.
func (d *Draft) Snapshot() billing.Snapshot {
	snap := billing.Snapshot{
		InvoiceNo: d.InvoiceNo,
		Date:      d.Date,
		Customer:  billing.Customer{Name: d.CustomerName, Phone: d.CustomerPhone},
		Items:     d.Lines(),
		Discount:  d.Discount,
		Received:  d.Received,
	}
	totals := billing.ComputeTotals(snap.Items, snap.Discount, snap.Received)
	snap.SubTotal = totals.SubTotal
	snap.Total = totals.Total
	snap.Balance = totals.Balance
	snap.DiscountPercent = billing.DiscountFromAmount(snap.SubTotal, snap.Discount)
	return snap
}
