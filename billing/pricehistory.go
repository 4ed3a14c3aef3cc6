package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryBill is the slice of a past bill that price lookup needs: when it was
// created and what was on it.
type HistoryBill struct {
	Date  time.Time
	Items []LineItem
}

// PricePoint is one previously charged price for a product.
type PricePoint struct {
	Price decimal.Decimal `json:"price"`
	Unit  string          `json:"unit"`
	Date  time.Time       `json:"date"`
}

// PriceHistory walks bills newest-first and collects up to cap distinct prices
// charged for the exact product name, each tagged with the unit and bill date
// of its first (most recent) occurrence. Matching is exact and case-sensitive.
func PriceHistory(bills []HistoryBill, productName string, cap int) []PricePoint {
	if cap <= 0 {
		return nil
	}
	history := make([]PricePoint, 0, cap)
	seen := make(map[string]struct{}, cap)

	for _, bill := range bills {
		for _, item := range bill.Items {
			if item.ProductName != productName {
				continue
			}
			key := item.Price.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			history = append(history, PricePoint{
				Price: item.Price,
				Unit:  item.Unit,
				Date:  bill.Date,
			})
			if len(history) >= cap {
				return history
			}
		}
	}
	return history
}
