package catalog

import "testing"

func sampleTree() *Tree {
	return &Tree{
		Categories: []Category{
			{ID: "cat-wood", Name: "Wood", Active: true},
			{ID: "cat-hardware", Name: "Hardware", Active: true},
		},
		Materials: []Material{
			{ID: "mat-ply", CategoryID: "cat-wood", Name: "Plywood", Active: true},
			{ID: "mat-teak", CategoryID: "cat-wood", Name: "Teak", Active: true},
			{ID: "mat-hinge", CategoryID: "cat-hardware", Name: "Hinge", Active: true},
		},
		Sizes: []Size{
			{ID: "sz-8x4", MaterialID: "mat-ply", Value: "8x4", Active: true},
			{ID: "sz-6x3", MaterialID: "mat-ply", Value: "6x3", Active: true},
			{ID: "sz-teak-12", MaterialID: "mat-teak", Value: "12ft", Active: true},
		},
		Fittings: []Fitting{
			{ID: "fit-mr", MaterialID: "mat-ply", Name: "MR Grade", Active: true},
			{ID: "fit-brass", MaterialID: "mat-hinge", Name: "Brass", Active: true},
		},
	}
}

func TestActiveFilters(t *testing.T) {
	tree := sampleTree()
	tree.Sizes[1].Active = false

	if got := tree.MaterialsByCategory("cat-wood"); len(got) != 2 {
		t.Errorf("MaterialsByCategory = %d materials, want 2", len(got))
	}
	sizes := tree.SizesByMaterial("mat-ply")
	if len(sizes) != 1 || sizes[0].ID != "sz-8x4" {
		t.Errorf("SizesByMaterial must skip inactive sizes, got %+v", sizes)
	}
	if got := tree.FittingsByMaterial("mat-ply"); len(got) != 1 || got[0].Name != "MR Grade" {
		t.Errorf("FittingsByMaterial = %+v", got)
	}
	if got := tree.MaterialsByCategory("missing"); got != nil {
		t.Errorf("unknown category returned %+v", got)
	}
}

func TestDeactivateMaterialCascades(t *testing.T) {
	tree := sampleTree()

	if !tree.DeactivateMaterial("mat-ply") {
		t.Fatal("expected material to be found")
	}

	if tree.material("mat-ply").Active {
		t.Error("material still active")
	}
	for _, s := range tree.SizesByMaterial("mat-ply") {
		t.Errorf("ply size still active: %+v", s)
	}
	for _, f := range tree.FittingsByMaterial("mat-ply") {
		t.Errorf("ply fitting still active: %+v", f)
	}

	// Sibling material under the same category keeps its children.
	if !tree.material("mat-teak").Active {
		t.Error("sibling material deactivated")
	}
	if got := tree.SizesByMaterial("mat-teak"); len(got) != 1 {
		t.Errorf("sibling material lost its sizes: %+v", got)
	}
	// Unrelated category untouched.
	if got := tree.FittingsByMaterial("mat-hinge"); len(got) != 1 {
		t.Errorf("unrelated fitting deactivated: %+v", got)
	}
}

func TestDeactivateCategoryCascadesTwoLevels(t *testing.T) {
	tree := sampleTree()

	if !tree.DeactivateCategory("cat-wood") {
		t.Fatal("expected category to be found")
	}

	for _, id := range []string{"mat-ply", "mat-teak"} {
		if tree.material(id).Active {
			t.Errorf("material %s still active", id)
		}
	}
	for _, sz := range tree.Sizes {
		if sz.MaterialID != "mat-hinge" && sz.Active {
			t.Errorf("size %s still active", sz.ID)
		}
	}
	if !tree.Categories[1].Active {
		t.Error("sibling category deactivated")
	}
	if got := tree.MaterialsByCategory("cat-hardware"); len(got) != 1 {
		t.Errorf("sibling category lost materials: %+v", got)
	}
}

func TestDeactivateLeaves(t *testing.T) {
	tree := sampleTree()

	if !tree.DeactivateSize("sz-8x4") {
		t.Fatal("size not found")
	}
	if got := tree.SizesByMaterial("mat-ply"); len(got) != 1 || got[0].ID != "sz-6x3" {
		t.Errorf("sizes after leaf deactivation: %+v", got)
	}
	if tree.DeactivateSize("missing") {
		t.Error("missing size reported as deactivated")
	}
	if !tree.DeactivateFitting("fit-brass") {
		t.Fatal("fitting not found")
	}
	if got := tree.FittingsByMaterial("mat-hinge"); got != nil {
		t.Errorf("fitting still listed: %+v", got)
	}
}
