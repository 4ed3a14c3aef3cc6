package controllers

import (
	"testing"

	"github.com/shopspring/decimal"

	"timberbill-backend/middlewares"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDraftRequestAllowsUnnamedRows(t *testing.T) {
	req := draftRequest{
		Items: []draftItem{{ProductName: "", Qty: 2, Price: 150}},
	}
	if err := middlewares.ValidateStruct(&req); err != nil {
		t.Fatalf("draft with unnamed row rejected: %v", err)
	}
}

func TestDraftRequestStillRangeChecksItems(t *testing.T) {
	req := draftRequest{
		Items: []draftItem{{Qty: 1, Price: 100, ItemPercent: -150}},
	}
	if err := middlewares.ValidateStruct(&req); err == nil {
		t.Fatal("item percent below -100 accepted on a draft")
	}
}

func TestBillRequestRequiresNamedRowsAndCustomer(t *testing.T) {
	req := billRequest{
		InvoiceNo: 7,
		Date:      "2025-01-15",
		Items:     []itemRequest{{ProductName: "", Qty: 1, Price: 100}},
	}
	if err := middlewares.ValidateStruct(&req); err == nil {
		t.Fatal("bill with unnamed row accepted")
	}

	req.Items[0].ProductName = "Teak Plank"
	req.Customer = customerRef{}
	if err := middlewares.ValidateStruct(&req); err == nil {
		t.Fatal("bill without customer name accepted")
	}
}

func TestDraftSnapshotIsDerivedServerSide(t *testing.T) {
	req := draftRequest{
		InvoiceNo: 3,
		Date:      "2025-01-15",
		Customer:  draftCustomer{Name: "Sharma Traders"},
		Items: []draftItem{
			{ProductName: "Plywood (8x4) 5", Price: 45},
			{ProductName: "Teak Plank", Qty: 2, Price: 300, ItemPercent: 10},
		},
	}

	snap := req.snapshot()
	if !snap.Items[0].IsPly || snap.Items[0].Pieces != 5 {
		t.Errorf("ply metadata not rederived from the name: isPly=%v pieces=%d",
			snap.Items[0].IsPly, snap.Items[0].Pieces)
	}
	if !snap.Items[0].Qty.IsZero() {
		t.Errorf("save must not override the sent quantity: qty = %s", snap.Items[0].Qty)
	}
	if !snap.Items[1].Amount.Equal(dec("660")) {
		t.Errorf("derived amount = %s, want 660", snap.Items[1].Amount)
	}
	if !snap.SubTotal.Equal(dec("660")) {
		t.Errorf("subtotal = %s, want 660", snap.SubTotal)
	}
}
