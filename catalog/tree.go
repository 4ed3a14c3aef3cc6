// Package catalog models the Category → Material → {Size, Fitting} chain the
// billing screen composes product names from, including the cascading
// deactivation rule. The cascade lives here, in application logic, so it can
// be tested directly; the HTTP layer replays the same rule against storage.
package catalog

// Category is the top of the chain.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Material belongs to a Category.
type Material struct {
	ID         string `json:"id"`
	CategoryID string `json:"categoryId"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
}

// Size belongs to a Material.
type Size struct {
	ID         string `json:"id"`
	MaterialID string `json:"materialId"`
	Value      string `json:"value"`
	Active     bool   `json:"active"`
}

// Fitting belongs to a Material.
type Fitting struct {
	ID         string `json:"id"`
	MaterialID string `json:"materialId"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
}

// Tree is an in-memory snapshot of the whole catalog. Children reference
// their parent by id only; the parent owns the deactivation cascade.
type Tree struct {
	Categories []Category `json:"categories"`
	Materials  []Material `json:"materials"`
	Sizes      []Size     `json:"sizes"`
	Fittings   []Fitting  `json:"fittings"`
}

// MaterialsByCategory returns the active materials under a category.
func (t *Tree) MaterialsByCategory(categoryID string) []Material {
	var out []Material
	for _, m := range t.Materials {
		if m.CategoryID == categoryID && m.Active {
			out = append(out, m)
		}
	}
	return out
}

// SizesByMaterial returns the active sizes under a material.
func (t *Tree) SizesByMaterial(materialID string) []Size {
	var out []Size
	for _, s := range t.Sizes {
		if s.MaterialID == materialID && s.Active {
			out = append(out, s)
		}
	}
	return out
}

// FittingsByMaterial returns the active fittings under a material.
func (t *Tree) FittingsByMaterial(materialID string) []Fitting {
	var out []Fitting
	for _, f := range t.Fittings {
		if f.MaterialID == materialID && f.Active {
			out = append(out, f)
		}
	}
	return out
}

func (t *Tree) material(id string) *Material {
	for i := range t.Materials {
		if t.Materials[i].ID == id {
			return &t.Materials[i]
		}
	}
	return nil
}

// DeactivateCategory soft-hides a category and cascades to its materials and
// their sizes/fittings. Sibling categories are untouched. Returns false when
// the category does not exist.
func (t *Tree) DeactivateCategory(id string) bool {
	found := false
	for i := range t.Categories {
		if t.Categories[i].ID == id {
			t.Categories[i].Active = false
			found = true
		}
	}
	if !found {
		return false
	}
	for i := range t.Materials {
		if t.Materials[i].CategoryID == id {
			t.deactivateMaterialChildren(t.Materials[i].ID)
			t.Materials[i].Active = false
		}
	}
	return true
}

// DeactivateMaterial soft-hides a material and cascades to its sizes and
// fittings. Sibling materials and their children are untouched.
func (t *Tree) DeactivateMaterial(id string) bool {
	m := t.material(id)
	if m == nil {
		return false
	}
	m.Active = false
	t.deactivateMaterialChildren(id)
	return true
}

func (t *Tree) deactivateMaterialChildren(materialID string) {
	for i := range t.Sizes {
		if t.Sizes[i].MaterialID == materialID {
			t.Sizes[i].Active = false
		}
	}
	for i := range t.Fittings {
		if t.Fittings[i].MaterialID == materialID {
			t.Fittings[i].Active = false
		}
	}
}

// DeactivateSize soft-hides a single size. No cascade: sizes are leaves.
func (t *Tree) DeactivateSize(id string) bool {
	for i := range t.Sizes {
		if t.Sizes[i].ID == id {
			t.Sizes[i].Active = false
			return true
		}
	}
	return false
}

// DeactivateFitting soft-hides a single fitting.
func (t *Tree) DeactivateFitting(id string) bool {
	for i := range t.Fittings {
		if t.Fittings[i].ID == id {
			t.Fittings[i].Active = false
			return true
		}
	}
	return false
}
