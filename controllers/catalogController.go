package controllers

import (
	"timberbill-backend/database"
	"timberbill-backend/middlewares"
	"timberbill-backend/models"
	"timberbill-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type nameRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type materialRequest struct {
	CategoryId string `json:"categoryId" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
}

type sizeRequest struct {
	MaterialId string `json:"materialId" validate:"required,uuid4"`
	Value      string `json:"value" validate:"required,min=1,max=120"`
}

type fittingRequest struct {
	MaterialId string `json:"materialId" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=120"`
}

// GetCatalogTree returns every active node of the chain in one payload, the
// shape the billing screen composes product names from.
func GetCatalogTree(c *fiber.Ctx) error {
	var (
		categories []models.Category
		materials  []models.Material
		sizes      []models.Size
		fittings   []models.Fitting
	)
	if err := database.DB.Where("active").Order("name ASC").Find(&categories).Error; err != nil {
		return err
	}
	if err := database.DB.Where("active").Order("name ASC").Find(&materials).Error; err != nil {
		return err
	}
	if err := database.DB.Where("active").Order("value ASC").Find(&sizes).Error; err != nil {
		return err
	}
	if err := database.DB.Where("active").Order("name ASC").Find(&fittings).Error; err != nil {
		return err
	}
	return c.JSON(utils.Data(models.BuildTree(categories, materials, sizes, fittings)))
}

func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Where("active").Order("name ASC").Find(&categories).Error; err != nil {
		return err
	}
	return c.JSON(utils.Data(categories))
}

func GetMaterialsByCategory(c *fiber.Ctx) error {
	var materials []models.Material
	err := database.DB.
		Where("category_id = ? AND active", c.Params("id")).
		Order("name ASC").
		Find(&materials).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(materials))
}

func GetSizesByMaterial(c *fiber.Ctx) error {
	var sizes []models.Size
	err := database.DB.
		Where("material_id = ? AND active", c.Params("id")).
		Order("value ASC").
		Find(&sizes).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(sizes))
}

func GetFittingsByMaterial(c *fiber.Ctx) error {
	var fittings []models.Fitting
	err := database.DB.
		Where("material_id = ? AND active", c.Params("id")).
		Order("name ASC").
		Find(&fittings).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(fittings))
}

// duplicateName checks for an active row with the same value in the given
// scope. Duplicates among deactivated rows are fine; reactivating is done by
// creating the name again.
func duplicateName(db *gorm.DB, model any, where string, args ...any) (bool, error) {
	var count int64
	if err := db.Model(model).Where(where, args...).Where("active").Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateCategory(c *fiber.Ctx) error {
	var req nameRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)
	dup, err := duplicateName(db, &models.Category{}, "name = ?", req.Name)
	if err != nil {
		return err
	}
	if dup {
		return fiber.NewError(fiber.StatusConflict, "category already exists")
	}

	category := models.Category{Name: req.Name, Active: true}
	if err := db.Create(&category).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(utils.Data(category))
}

func CreateMaterial(c *fiber.Ctx) error {
	var req materialRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	var category models.Category
	err := db.Where("id = ? AND active", req.CategoryId).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	}
	if err != nil {
		return err
	}

	dup, err := duplicateName(db, &models.Material{}, "category_id = ? AND name = ?", req.CategoryId, req.Name)
	if err != nil {
		return err
	}
	if dup {
		return fiber.NewError(fiber.StatusConflict, "material already exists in this category")
	}

	material := models.Material{CategoryId: req.CategoryId, Name: req.Name, Active: true}
	if err := db.Create(&material).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(utils.Data(material))
}

func CreateSize(c *fiber.Ctx) error {
	var req sizeRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	var material models.Material
	err := db.Where("id = ? AND active", req.MaterialId).First(&material).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "material not found")
	}
	if err != nil {
		return err
	}

	dup, err := duplicateName(db, &models.Size{}, "material_id = ? AND value = ?", req.MaterialId, req.Value)
	if err != nil {
		return err
	}
	if dup {
		return fiber.NewError(fiber.StatusConflict, "size already exists for this material")
	}

	size := models.Size{MaterialId: req.MaterialId, Value: req.Value, Active: true}
	if err := db.Create(&size).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(utils.Data(size))
}

func CreateFitting(c *fiber.Ctx) error {
	var req fittingRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	var material models.Material
	err := db.Where("id = ? AND active", req.MaterialId).First(&material).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "material not found")
	}
	if err != nil {
		return err
	}

	dup, err := duplicateName(db, &models.Fitting{}, "material_id = ? AND name = ?", req.MaterialId, req.Name)
	if err != nil {
		return err
	}
	if dup {
		return fiber.NewError(fiber.StatusConflict, "fitting already exists for this material")
	}

	fitting := models.Fitting{MaterialId: req.MaterialId, Name: req.Name, Active: true}
	if err := db.Create(&fitting).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(utils.Data(fitting))
}

// deactivateMaterialChildren replays the tree cascade against storage:
// everything under the material goes inactive with it.
func deactivateMaterialChildren(db *gorm.DB, materialIDs []string) error {
	if len(materialIDs) == 0 {
		return nil
	}
	err := db.Model(&models.Size{}).
		Where("material_id IN ?", materialIDs).
		Update("active", false).Error
	if err != nil {
		return err
	}
	return db.Model(&models.Fitting{}).
		Where("material_id IN ?", materialIDs).
		Update("active", false).Error
}

// DeleteCategory deactivates the category and cascades through its materials
// to their sizes and fittings. Nothing is ever hard-deleted; stored bills
// keep their product names regardless.
func DeleteCategory(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var category models.Category
	err := db.Where("id = ? AND active", c.Params("id")).First(&category).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "category not found")
	}
	if err != nil {
		return err
	}

	var materialIDs []string
	err = db.Model(&models.Material{}).
		Where("category_id = ?", category.Id).
		Pluck("id", &materialIDs).Error
	if err != nil {
		return err
	}
	if err := deactivateMaterialChildren(db, materialIDs); err != nil {
		return err
	}
	err = db.Model(&models.Material{}).
		Where("category_id = ?", category.Id).
		Update("active", false).Error
	if err != nil {
		return err
	}
	if err := db.Model(&category).Update("active", false).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteMaterial deactivates the material and its sizes and fittings.
func DeleteMaterial(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var material models.Material
	err := db.Where("id = ? AND active", c.Params("id")).First(&material).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "material not found")
	}
	if err != nil {
		return err
	}

	if err := deactivateMaterialChildren(db, []string{material.Id}); err != nil {
		return err
	}
	if err := db.Model(&material).Update("active", false).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSize deactivates a single size. Leaf nodes have no cascade.
func DeleteSize(c *fiber.Ctx) error {
	res := middlewares.RequestDB(c).Model(&models.Size{}).
		Where("id = ? AND active", c.Params("id")).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "size not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteFitting deactivates a single fitting.
func DeleteFitting(c *fiber.Ctx) error {
	res := middlewares.RequestDB(c).Model(&models.Fitting{}).
		Where("id = ? AND active", c.Params("id")).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "fitting not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
