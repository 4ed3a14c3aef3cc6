package models

import (
	"time"

	"github.com/shopspring/decimal"

	"timberbill-backend/billing"
)

// Bill is a finalized invoice. Soft delete is an explicit flag rather than
// gorm.DeletedAt: a deleted bill must stay readable, double deletion must be
// a reported error, and the invoice-number uniqueness rule only looks at
// non-deleted rows (partial index, see database/migrate.go).
type Bill struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	InvoiceNo int    `json:"invoiceNo" gorm:"not null;index"`
	Date      string `json:"date" gorm:"not null;index"`

	CustomerName  string `json:"customerName" gorm:"not null;index"`
	CustomerPhone string `json:"customerPhone"`

	Items []BillItem `json:"items" gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`

	SubTotal        decimal.Decimal `json:"subTotal" gorm:"type:numeric(12,2)"`
	DiscountPercent decimal.Decimal `json:"discountPercent" gorm:"type:numeric(7,2)"`
	Discount        decimal.Decimal `json:"discount" gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `json:"total" gorm:"type:numeric(12,2)"`
	Received        decimal.Decimal `json:"received" gorm:"type:numeric(12,2)"`
	Balance         decimal.Decimal `json:"balance" gorm:"type:numeric(12,2)"`

	Deleted   bool       `json:"deleted" gorm:"default:false;index"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BillItem is one stored row. Position preserves entry order, which is also
// display order.
type BillItem struct {
	ID       uint `json:"-" gorm:"primaryKey"`
	BillID   uint `json:"-" gorm:"index"`
	Position int  `json:"-" gorm:"not null"`

	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty" gorm:"type:numeric(12,3)"`
	Unit        string          `json:"unit" gorm:"size:10"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	ItemPercent decimal.Decimal `json:"itemPercent" gorm:"type:numeric(7,2)"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`

	IsPly  bool            `json:"isPly,omitempty"`
	Height decimal.Decimal `json:"height,omitempty" gorm:"type:numeric(8,3)"`
	Width  decimal.Decimal `json:"width,omitempty" gorm:"type:numeric(8,3)"`
	Pieces int             `json:"pieces,omitempty"`
}

// Line converts a stored row into the core's line item.
func (it BillItem) Line() billing.LineItem {
	return billing.LineItem{
		ProductName: it.ProductName,
		Qty:         it.Qty,
		Unit:        it.Unit,
		Price:       it.Price,
		ItemPercent: it.ItemPercent,
		Amount:      it.Amount,
		IsPly:       it.IsPly,
		Height:      it.Height,
		Width:       it.Width,
		Pieces:      it.Pieces,
	}
}

// Lines converts the stored rows, in position order as loaded.
func (b *Bill) Lines() []billing.LineItem {
	lines := make([]billing.LineItem, 0, len(b.Items))
	for _, it := range b.Items {
		lines = append(lines, it.Line())
	}
	return lines
}

// SetLines replaces the stored rows from derived line items, assigning
// positions from the slice order.
func (b *Bill) SetLines(lines []billing.LineItem) {
	b.Items = make([]BillItem, 0, len(lines))
	for i, line := range lines {
		b.Items = append(b.Items, BillItem{
			Position:    i,
			ProductName: line.ProductName,
			Qty:         line.Qty,
			Unit:        line.Unit,
			Price:       line.Price,
			ItemPercent: line.ItemPercent,
			Amount:      line.Amount,
			IsPly:       line.IsPly,
			Height:      line.Height,
			Width:       line.Width,
			Pieces:      line.Pieces,
		})
	}
}

// ApplySnapshot copies every derived field of a computed bill state onto the
// persisted record, so what is stored is exactly what the core computed.
func (b *Bill) ApplySnapshot(snap billing.Snapshot) {
	b.InvoiceNo = snap.InvoiceNo
	b.Date = snap.Date
	b.CustomerName = snap.Customer.Name
	b.CustomerPhone = snap.Customer.Phone
	b.SetLines(snap.Items)
	b.SubTotal = snap.SubTotal
	b.DiscountPercent = snap.DiscountPercent
	b.Discount = snap.Discount
	b.Total = snap.Total
	b.Received = snap.Received
	b.Balance = snap.Balance
}
