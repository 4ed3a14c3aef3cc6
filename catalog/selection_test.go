package catalog

import "testing"

func TestComposeName(t *testing.T) {
	tests := []struct {
		name     string
		material string
		size     string
		fitting  string
		want     string
	}{
		{name: "all parts", material: "Plywood", size: "8x4", fitting: "MR Grade", want: "Plywood 8x4 MR Grade"},
		{name: "material only", material: "Teak", want: "Teak"},
		{name: "material and fitting", material: "Plywood", fitting: "BWP", want: "Plywood BWP"},
		{name: "size only", size: "6x3", want: "6x3"},
		{name: "nothing selected", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeName(tt.material, tt.size, tt.fitting); got != tt.want {
				t.Errorf("ComposeName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectionPrefixResets(t *testing.T) {
	var sel Selection
	sel.SelectCategory("cat-wood")
	sel.SelectMaterial("mat-ply")
	sel.SelectSize("sz-8x4")
	sel.SelectFitting("fit-mr")

	// Size and fitting are siblings: picking one keeps the other.
	sel.SelectSize("sz-6x3")
	if sel.FittingID != "fit-mr" {
		t.Errorf("selecting a size cleared the fitting: %+v", sel)
	}

	// A new material clears size and fitting but keeps the category.
	sel.SelectMaterial("mat-teak")
	if sel.SizeID != "" || sel.FittingID != "" {
		t.Errorf("selecting a material kept children: %+v", sel)
	}
	if sel.CategoryID != "cat-wood" {
		t.Errorf("selecting a material cleared the category: %+v", sel)
	}

	// A new category clears the whole chain below it.
	sel.SelectCategory("cat-hardware")
	if sel.MaterialID != "" || sel.SizeID != "" || sel.FittingID != "" {
		t.Errorf("selecting a category kept children: %+v", sel)
	}
}

func TestSelectionBuildName(t *testing.T) {
	tree := sampleTree()

	var sel Selection
	sel.SelectCategory("cat-wood")
	sel.SelectMaterial("mat-ply")
	sel.SelectSize("sz-8x4")
	sel.SelectFitting("fit-mr")

	if got := sel.BuildName(tree); got != "Plywood 8x4 MR Grade" {
		t.Errorf("BuildName = %q", got)
	}

	// Dangling ids are skipped rather than breaking the name.
	sel.SelectSize("gone")
	if got := sel.BuildName(tree); got != "Plywood MR Grade" {
		t.Errorf("BuildName with dangling size = %q", got)
	}

	if got := (Selection{}).BuildName(tree); got != "" {
		t.Errorf("empty selection = %q, want empty", got)
	}
}
