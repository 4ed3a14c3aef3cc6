package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"timberbill-backend/catalog"
)

// The catalog chain: Category → Material → {Size, Fitting}. Children carry
// their parent's id only; deactivation cascades top-down in the controller.

type Category struct {
	Id     string `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	Active bool   `json:"active" gorm:"default:true;index"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	c.Id = uuid.NewString()
	return
}

type Material struct {
	Id         string `json:"id" gorm:"primaryKey"`
	CategoryId string `json:"categoryId" gorm:"not null;index:idx_materials_category_active,priority:1"`
	Name       string `json:"name" gorm:"not null"`
	Active     bool   `json:"active" gorm:"default:true;index:idx_materials_category_active,priority:2"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) (err error) {
	m.Id = uuid.NewString()
	return
}

type Size struct {
	Id         string `json:"id" gorm:"primaryKey"`
	MaterialId string `json:"materialId" gorm:"not null;index:idx_sizes_material_active,priority:1"`
	Value      string `json:"value" gorm:"not null"`
	Active     bool   `json:"active" gorm:"default:true;index:idx_sizes_material_active,priority:2"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) (err error) {
	s.Id = uuid.NewString()
	return
}

type Fitting struct {
	Id         string `json:"id" gorm:"primaryKey"`
	MaterialId string `json:"materialId" gorm:"not null;index:idx_fittings_material_active,priority:1"`
	Name       string `json:"name" gorm:"not null"`
	Active     bool   `json:"active" gorm:"default:true;index:idx_fittings_material_active,priority:2"`
}

func (f *Fitting) BeforeCreate(tx *gorm.DB) (err error) {
	f.Id = uuid.NewString()
	return
}

// BuildTree assembles the in-memory catalog snapshot the core operates on.
func BuildTree(categories []Category, materials []Material, sizes []Size, fittings []Fitting) *catalog.Tree {
	tree := &catalog.Tree{
		Categories: make([]catalog.Category, 0, len(categories)),
		Materials:  make([]catalog.Material, 0, len(materials)),
		Sizes:      make([]catalog.Size, 0, len(sizes)),
		Fittings:   make([]catalog.Fitting, 0, len(fittings)),
	}
	for _, c := range categories {
		tree.Categories = append(tree.Categories, catalog.Category{ID: c.Id, Name: c.Name, Active: c.Active})
	}
	for _, m := range materials {
		tree.Materials = append(tree.Materials, catalog.Material{ID: m.Id, CategoryID: m.CategoryId, Name: m.Name, Active: m.Active})
	}
	for _, s := range sizes {
		tree.Sizes = append(tree.Sizes, catalog.Size{ID: s.Id, MaterialID: s.MaterialId, Value: s.Value, Active: s.Active})
	}
	for _, f := range fittings {
		tree.Fittings = append(tree.Fittings, catalog.Fitting{ID: f.Id, MaterialID: f.MaterialId, Name: f.Name, Active: f.Active})
	}
	return tree
}
