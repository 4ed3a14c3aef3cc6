package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDetectPlyPattern(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantMatch  bool
		wantHeight string
		wantWidth  string
		wantPieces int
		wantQty    string
	}{
		{
			name: "standard sheet", text: "Plywood (8x4) 5",
			wantMatch: true, wantHeight: "8", wantWidth: "4", wantPieces: 5, wantQty: "160",
		},
		{
			name: "spaces and capital X", text: "MR Grade (6 X 3) 10",
			wantMatch: true, wantHeight: "6", wantWidth: "3", wantPieces: 10, wantQty: "180",
		},
		{
			name: "multiplication sign", text: "Laminate (8×4) 2",
			wantMatch: true, wantHeight: "8", wantWidth: "4", wantPieces: 2, wantQty: "64",
		},
		{
			name: "fractional dimensions", text: "Veneer (7.5x3.25) 4",
			wantMatch: true, wantHeight: "7.5", wantWidth: "3.25", wantPieces: 4, wantQty: "97.5",
		},
		{name: "no pattern", text: "Teak Door Frame", wantMatch: false},
		{name: "dimensions without pieces", text: "Board (8x4)", wantMatch: false},
		{name: "no parentheses", text: "Board 8x4 5", wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, ok := DetectPlyPattern(tt.text)
			if ok != tt.wantMatch {
				t.Fatalf("DetectPlyPattern(%q) match = %v, want %v", tt.text, ok, tt.wantMatch)
			}
			if !ok {
				return
			}
			if !dims.Height.Equal(dec(tt.wantHeight)) || !dims.Width.Equal(dec(tt.wantWidth)) || dims.Pieces != tt.wantPieces {
				t.Errorf("dims = %s x %s x %d, want %s x %s x %d",
					dims.Height, dims.Width, dims.Pieces, tt.wantHeight, tt.wantWidth, tt.wantPieces)
			}
			if !dims.Quantity().Equal(dec(tt.wantQty)) {
				t.Errorf("Quantity() = %s, want %s", dims.Quantity(), tt.wantQty)
			}
		})
	}
}

func TestDetectPlyPatternIdempotent(t *testing.T) {
	const text = "Plywood (8x4) 5"

	first, ok1 := DetectPlyPattern(text)
	second, ok2 := DetectPlyPattern(text)
	if !ok1 || !ok2 {
		t.Fatal("expected both detections to match")
	}
	if !first.Height.Equal(second.Height) || !first.Width.Equal(second.Width) || first.Pieces != second.Pieces {
		t.Errorf("repeated detection drifted: %+v vs %+v", first, second)
	}
	if !first.Quantity().Equal(decimal.NewFromInt(160)) {
		t.Errorf("quantity = %s, want 160", first.Quantity())
	}
}

func TestApplyPlyForcesUnit(t *testing.T) {
	item := applyPly(LineItem{ProductName: "Plywood (8x4) 5", Qty: dec("1"), Unit: UnitPcs})
	if !item.IsPly {
		t.Fatal("expected ply item")
	}
	if item.Unit != UnitSqFt {
		t.Errorf("unit = %q, want %q", item.Unit, UnitSqFt)
	}
	if !item.Qty.Equal(dec("160")) {
		t.Errorf("qty = %s, want 160", item.Qty)
	}

	plain := applyPly(LineItem{ProductName: "Teak Door", Qty: dec("3"), Unit: UnitPcs})
	if plain.IsPly || plain.Unit != UnitPcs || !plain.Qty.Equal(dec("3")) {
		t.Errorf("non-ply item altered: %+v", plain)
	}
}
