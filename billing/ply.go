package billing

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// plyPattern matches "(H x W) N" anywhere in a product name: two decimals
// separated by x/X/× inside parentheses, followed by an integer piece count.
var plyPattern = regexp.MustCompile(`\((\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)\)\s*(\d+)`)

// PlyDims are the sheet dimensions encoded in a product name.
type PlyDims struct {
	Height decimal.Decimal `json:"height"`
	Width  decimal.Decimal `json:"width"`
	Pieces int             `json:"pieces"`
}

// Quantity is the derived area: height * width * pieces, in square feet.
func (d PlyDims) Quantity() decimal.Decimal {
	return d.Height.Mul(d.Width).Mul(decimal.NewFromInt(int64(d.Pieces)))
}

// DetectPlyPattern scans a product name for a ply dimension pattern. Matching
// the same literal text again yields the same dimensions, so callers may rerun
// detection on unchanged names without drift.
func DetectPlyPattern(productName string) (PlyDims, bool) {
	m := plyPattern.FindStringSubmatch(productName)
	if m == nil {
		return PlyDims{}, false
	}
	height, err := decimal.NewFromString(m[1])
	if err != nil {
		return PlyDims{}, false
	}
	width, err := decimal.NewFromString(m[2])
	if err != nil {
		return PlyDims{}, false
	}
	pieces, err := strconv.Atoi(m[3])
	if err != nil {
		return PlyDims{}, false
	}
	return PlyDims{Height: height, Width: width, Pieces: pieces}, true
}

// applyPly runs ply detection on an item and, on a match, derives the quantity
// and forces the unit to Sq-Ft. Without a match the item passes through as is.
func applyPly(item LineItem) LineItem {
	dims, ok := DetectPlyPattern(item.ProductName)
	if !ok {
		item.IsPly = false
		item.Height = decimal.Zero
		item.Width = decimal.Zero
		item.Pieces = 0
		return item
	}
	item.IsPly = true
	item.Height = dims.Height
	item.Width = dims.Width
	item.Pieces = dims.Pieces
	item.Qty = dims.Quantity()
	item.Unit = UnitSqFt
	return item
}
