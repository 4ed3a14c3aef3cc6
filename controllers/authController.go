package controllers

import (
	"timberbill-backend/database"
	"timberbill-backend/middlewares"
	"timberbill-backend/models"
	"timberbill-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type registerRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=64"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=admin cashier viewer"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCashier
	}

	user := models.User{Username: req.Username, Role: role}
	user.SetPassword(req.Password)

	// Duplicate usernames fall through to the unique constraint and come back
	// as a 409 from the error handler.
	if err := middlewares.RequestDB(c).Create(&user).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(utils.Data(user))
}

func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	var user models.User
	err := database.DB.Where("username = ?", req.Username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return err
	}

	if err := user.ComparePassword(req.Password); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := middlewares.GenerateJWT(user.Id, user.Role)
	if err != nil {
		return err
	}

	return c.JSON(utils.Data(fiber.Map{
		"token": token,
		"user":  user,
	}))
}

// Logout is a no-op server-side: auth is a Bearer token the client discards.
// The endpoint exists so the client has a uniform place to end a session.
func Logout(c *fiber.Ctx) error {
	return c.JSON(utils.Data(fiber.Map{"message": "logged out"}))
}
