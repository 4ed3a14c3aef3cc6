package catalog

import "strings"

// ComposeName joins the selected display values with single spaces, skipping
// absent parts. An empty selection yields an empty string.
func ComposeName(materialName, sizeValue, fittingName string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{materialName, sizeValue, fittingName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Selection tracks the catalog nodes currently picked on the billing screen.
// Picking higher up the chain resets everything below it: a new category
// clears material/size/fitting, a new material clears size/fitting, while
// size and fitting are siblings and do not reset each other.
type Selection struct {
	CategoryID string `json:"categoryId,omitempty"`
	MaterialID string `json:"materialId,omitempty"`
	SizeID     string `json:"sizeId,omitempty"`
	FittingID  string `json:"fittingId,omitempty"`
}

// SelectCategory picks a category and clears the rest of the chain.
func (s *Selection) SelectCategory(id string) {
	s.CategoryID = id
	s.MaterialID = ""
	s.SizeID = ""
	s.FittingID = ""
}

// SelectMaterial picks a material and clears size and fitting.
func (s *Selection) SelectMaterial(id string) {
	s.MaterialID = id
	s.SizeID = ""
	s.FittingID = ""
}

// SelectSize picks a size. The fitting selection is left alone.
func (s *Selection) SelectSize(id string) {
	s.SizeID = id
}

// SelectFitting picks a fitting. The size selection is left alone.
func (s *Selection) SelectFitting(id string) {
	s.FittingID = id
}

// BuildName composes the product name for the current selection against a
// catalog snapshot. Selected ids that no longer resolve are simply skipped.
func (s Selection) BuildName(t *Tree) string {
	var materialName, sizeValue, fittingName string
	if s.MaterialID != "" {
		if m := t.material(s.MaterialID); m != nil {
			materialName = m.Name
		}
	}
	if s.SizeID != "" {
		for _, sz := range t.Sizes {
			if sz.ID == s.SizeID {
				sizeValue = sz.Value
				break
			}
		}
	}
	if s.FittingID != "" {
		for _, f := range t.Fittings {
			if f.ID == s.FittingID {
				fittingName = f.Name
				break
			}
		}
	}
	return ComposeName(materialName, sizeValue, fittingName)
}
