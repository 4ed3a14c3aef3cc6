package utils

import "testing"

type customerPatch struct {
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
	Credit  *float64 `json:"credit"`
	Ignored *string  `json:"-"`
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestUpdatesFromPtrDTO(t *testing.T) {
	dto := customerPatch{
		Name:    strPtr("Sharma Timber"),
		Credit:  f64Ptr(1500),
		Ignored: strPtr("nope"),
	}

	got := UpdatesFromPtrDTO(&dto, map[string]string{"credit": "credit_limit"})

	if len(got) != 2 {
		t.Fatalf("updates = %v, want 2 entries", got)
	}
	if got["name"] != "Sharma Timber" {
		t.Errorf("name = %v", got["name"])
	}
	if got["credit_limit"] != 1500.0 {
		t.Errorf("renamed column = %v", got["credit_limit"])
	}
	if _, ok := got["phone"]; ok {
		t.Error("nil field must not appear in updates")
	}
}

func TestNormalizePtrDTO(t *testing.T) {
	dto := customerPatch{
		Name:   strPtr("  Sharma Timber  "),
		Credit: f64Ptr(10.555),
	}

	NormalizePtrDTO(&dto)

	if *dto.Name != "Sharma Timber" {
		t.Errorf("name = %q", *dto.Name)
	}
	if *dto.Credit != 10.56 {
		t.Errorf("credit = %v, want 10.56", *dto.Credit)
	}
	if dto.Phone != nil {
		t.Error("nil field must stay nil")
	}
}

func TestPageMeta(t *testing.T) {
	env := Page([]int{1, 2, 3}, 45, 2, 20)
	if env.Meta == nil || env.Meta.Pages != 3 || env.Meta.Total != 45 {
		t.Errorf("meta = %+v", env.Meta)
	}
	exact := Page(nil, 40, 1, 20)
	if exact.Meta.Pages != 2 {
		t.Errorf("exact division pages = %d, want 2", exact.Meta.Pages)
	}
}
