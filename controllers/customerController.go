package controllers

import (
	"timberbill-backend/database"
	"timberbill-backend/middlewares"
	"timberbill-backend/models"
	"timberbill-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const customerSearchLimit = 10

type customerCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type customerUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func CreateCustomer(c *fiber.Ctx) error {
	var req customerCreateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	customer := models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := middlewares.RequestDB(c).Create(&customer).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(utils.Data(customer))
}

// GetCustomers lists everyone, or with ?q= does a prefix-anywhere name search
// capped for typeahead use.
func GetCustomers(c *fiber.Ctx) error {
	var customers []models.Customer

	q := database.DB.Order("name ASC")
	if search := c.Query("q"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%").Limit(customerSearchLimit)
	}
	if err := q.Find(&customers).Error; err != nil {
		return err
	}

	return c.JSON(utils.Data(customers))
}

func GetCustomer(c *fiber.Ctx) error {
	var customer models.Customer
	err := database.DB.Where("id = ?", c.Params("id")).First(&customer).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(customer))
}

func UpdateCustomer(c *fiber.Ctx) error {
	var req customerUpdateRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&req)

	db := middlewares.RequestDB(c)

	var customer models.Customer
	err := db.Where("id = ?", c.Params("id")).First(&customer).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}
	if err != nil {
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&req, nil)
	if len(updates) > 0 {
		if err := db.Model(&customer).Updates(updates).Error; err != nil {
			return err
		}
	}

	return c.JSON(utils.Data(customer))
}

func DeleteCustomer(c *fiber.Ctx) error {
	res := middlewares.RequestDB(c).Where("id = ?", c.Params("id")).Delete(&models.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "customer not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
