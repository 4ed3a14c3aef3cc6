package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func historyBill(day int, items ...LineItem) HistoryBill {
	return HistoryBill{
		Date:  time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC),
		Items: items,
	}
}

func TestPriceHistoryDistinctAndOrdered(t *testing.T) {
	// Newest-first window: same product at 10, 10, 20, 30, 40, 50.
	bills := []HistoryBill{
		historyBill(30, LineItem{ProductName: "Plywood 8x4", Price: dec("10"), Unit: UnitSqFt}),
		historyBill(29, LineItem{ProductName: "Plywood 8x4", Price: dec("10"), Unit: UnitSqFt}),
		historyBill(28, LineItem{ProductName: "Plywood 8x4", Price: dec("20"), Unit: UnitSqFt}),
		historyBill(27, LineItem{ProductName: "Plywood 8x4", Price: dec("30"), Unit: UnitSqFt}),
		historyBill(26, LineItem{ProductName: "Plywood 8x4", Price: dec("40"), Unit: UnitSqFt}),
		historyBill(25, LineItem{ProductName: "Plywood 8x4", Price: dec("50"), Unit: UnitSqFt}),
	}

	got := PriceHistory(bills, "Plywood 8x4", 5)

	want := []string{"10", "20", "30", "40", "50"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%+v)", len(got), len(want), got)
	}
	for i, w := range want {
		if !got[i].Price.Equal(dec(w)) {
			t.Errorf("history[%d].Price = %s, want %s", i, got[i].Price, w)
		}
	}
	// The duplicate 10 must carry the date of its first (newest) occurrence.
	if got[0].Date.Day() != 30 {
		t.Errorf("history[0].Date day = %d, want 30", got[0].Date.Day())
	}
}

func TestPriceHistoryCap(t *testing.T) {
	var bills []HistoryBill
	for i := 0; i < 8; i++ {
		bills = append(bills, historyBill(28-i, LineItem{
			ProductName: "Teak Plank",
			Price:       decimal.NewFromInt(int64(100 + i)),
			Unit:        UnitFt,
		}))
	}

	got := PriceHistory(bills, "Teak Plank", 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want cap 5", len(got))
	}
	if !got[0].Price.Equal(dec("100")) || !got[4].Price.Equal(dec("104")) {
		t.Errorf("window order broken: first=%s last=%s", got[0].Price, got[4].Price)
	}
}

func TestPriceHistoryExactMatch(t *testing.T) {
	bills := []HistoryBill{
		historyBill(30,
			LineItem{ProductName: "plywood 8x4", Price: dec("10"), Unit: UnitSqFt},
			LineItem{ProductName: "Plywood 8x4 ", Price: dec("20"), Unit: UnitSqFt},
			LineItem{ProductName: "Plywood 8x4", Price: dec("30"), Unit: UnitSqFt},
		),
	}

	got := PriceHistory(bills, "Plywood 8x4", 5)
	if len(got) != 1 || !got[0].Price.Equal(dec("30")) {
		t.Errorf("case/whitespace variants must not match: %+v", got)
	}
}

func TestPriceHistoryEmpty(t *testing.T) {
	if got := PriceHistory(nil, "Anything", 5); len(got) != 0 {
		t.Errorf("empty window returned %+v", got)
	}
	if got := PriceHistory([]HistoryBill{historyBill(1)}, "Anything", 0); got != nil {
		t.Errorf("zero cap returned %+v", got)
	}
}
