package billing

import (
	"testing"
)

func TestSnapshotAddItemDerivesEverything(t *testing.T) {
	snap := NewSnapshot(1, "2025-01-15").
		AddItem(LineItem{ProductName: "Plywood (8x4) 5", Qty: dec("1"), Unit: UnitPcs, Price: dec("45")})

	if len(snap.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(snap.Items))
	}
	item := snap.Items[0]
	if !item.Qty.Equal(dec("160")) || item.Unit != UnitSqFt {
		t.Errorf("ply derivation: qty=%s unit=%s, want 160 Sq-Ft", item.Qty, item.Unit)
	}
	if !item.Amount.Equal(dec("7200")) {
		t.Errorf("amount = %s, want 7200", item.Amount)
	}
	if !snap.SubTotal.Equal(dec("7200")) || !snap.Total.Equal(dec("7200")) || !snap.Balance.Equal(dec("7200")) {
		t.Errorf("totals = %s/%s/%s, want 7200 each", snap.SubTotal, snap.Total, snap.Balance)
	}
}

func TestSnapshotUpdateItemPlyOnlyOnNameChange(t *testing.T) {
	snap := NewSnapshot(1, "2025-01-15").
		AddItem(LineItem{ProductName: "Plywood (8x4) 5", Price: dec("45")})

	// Manual quantity override with the name unchanged must stick.
	edited := snap.Items[0]
	edited.Qty = dec("100")
	snap = snap.UpdateItem(0, edited)
	if !snap.Items[0].Qty.Equal(dec("100")) {
		t.Errorf("manual qty edit clobbered: qty = %s, want 100", snap.Items[0].Qty)
	}

	// Changing the name reruns detection and rederives the quantity.
	renamed := snap.Items[0]
	renamed.ProductName = "Plywood (6x3) 2"
	snap = snap.UpdateItem(0, renamed)
	if !snap.Items[0].Qty.Equal(dec("36")) {
		t.Errorf("rename did not rederive qty: %s, want 36", snap.Items[0].Qty)
	}
}

func TestSnapshotRemoveItemKeepsOrder(t *testing.T) {
	snap := NewSnapshot(1, "2025-01-15").
		AddItem(LineItem{ProductName: "A", Qty: dec("1"), Price: dec("10")}).
		AddItem(LineItem{ProductName: "B", Qty: dec("1"), Price: dec("20")}).
		AddItem(LineItem{ProductName: "C", Qty: dec("1"), Price: dec("30")})

	snap = snap.RemoveItem(1)
	if len(snap.Items) != 2 || snap.Items[0].ProductName != "A" || snap.Items[1].ProductName != "C" {
		t.Fatalf("unexpected items after removal: %+v", snap.Items)
	}
	if !snap.SubTotal.Equal(dec("40")) {
		t.Errorf("subtotal = %s, want 40", snap.SubTotal)
	}

	// Out-of-range indexes are no-ops.
	if got := snap.RemoveItem(5); len(got.Items) != 2 {
		t.Errorf("out-of-range removal changed items: %+v", got.Items)
	}
}

func TestSnapshotDiscountLinkage(t *testing.T) {
	snap := NewSnapshot(1, "2025-01-15").
		AddItem(LineItem{Qty: dec("2"), Price: dec("100")}).
		AddItem(LineItem{Qty: dec("1"), Price: dec("50"), ItemPercent: dec("10")})

	if !snap.SubTotal.Equal(dec("255")) {
		t.Fatalf("subtotal = %s, want 255", snap.SubTotal)
	}

	snap = snap.SetDiscountAmount(dec("25")).SetReceived(dec("200"))
	if !snap.Total.Equal(dec("230")) || !snap.Balance.Equal(dec("30")) {
		t.Errorf("total/balance = %s/%s, want 230/30", snap.Total, snap.Balance)
	}
	if !snap.DiscountPercent.Equal(dec("10")) {
		t.Errorf("linked percent = %s, want 10 (round of 25/255*100)", snap.DiscountPercent)
	}

	snap = snap.SetDiscountPercent(dec("20"))
	if !snap.Discount.Equal(dec("51")) {
		t.Errorf("linked amount = %s, want 51", snap.Discount)
	}
	if !snap.Total.Equal(dec("204")) {
		t.Errorf("total = %s, want 204", snap.Total)
	}
}

func TestSnapshotApplyPercentToAll(t *testing.T) {
	snap := NewSnapshot(1, "2025-01-15").
		AddItem(LineItem{Qty: dec("1"), Price: dec("100"), ItemPercent: dec("10")})

	if !snap.SubTotal.Equal(dec("110")) {
		t.Fatalf("subtotal = %s, want 110", snap.SubTotal)
	}

	snap = snap.ApplyPercentToAll(dec("10"))
	if !snap.Items[0].Price.Equal(dec("110")) || !snap.Items[0].ItemPercent.IsZero() {
		t.Errorf("item after baking: price=%s percent=%s, want 110/0",
			snap.Items[0].Price, snap.Items[0].ItemPercent)
	}
	if !snap.SubTotal.Equal(dec("110")) {
		t.Errorf("subtotal = %s, want 110 (percent baked into price, not reapplied)", snap.SubTotal)
	}
}

func TestValidateFinalize(t *testing.T) {
	complete := func() Snapshot {
		return NewSnapshot(7, "2025-01-15").
			SetCustomer(Customer{Name: "Sharma Traders"}).
			AddItem(LineItem{ProductName: "Teak Plank", Qty: dec("2"), Price: dec("300")})
	}

	tests := []struct {
		name    string
		mutate  func(Snapshot) Snapshot
		wantErr string
	}{
		{
			name:   "complete snapshot finalizes",
			mutate: func(s Snapshot) Snapshot { return s },
		},
		{
			name:    "zero invoice number",
			mutate:  func(s Snapshot) Snapshot { s.InvoiceNo = 0; return s },
			wantErr: "invoice number required",
		},
		{
			name:    "blank date",
			mutate:  func(s Snapshot) Snapshot { s.Date = "  "; return s },
			wantErr: "date required",
		},
		{
			name:    "missing customer name",
			mutate:  func(s Snapshot) Snapshot { return s.SetCustomer(Customer{}) },
			wantErr: "customer name required",
		},
		{
			name:    "whitespace customer name",
			mutate:  func(s Snapshot) Snapshot { return s.SetCustomer(Customer{Name: "   "}) },
			wantErr: "customer name required",
		},
		{
			name:    "no items",
			mutate:  func(s Snapshot) Snapshot { s.Items = nil; return s },
			wantErr: "at least one item required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(complete()).ValidateFinalize()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateFinalize() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("ValidateFinalize() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
