package middlewares

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"timberbill-backend/billing"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "unit" accepts exactly the units a line item can be sold in.
	_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
		return billing.ValidUnit(fl.Field().String())
	})
	return v
}

// BindAndValidate parses the request body into dst and validates it.
// Returns fiber.ErrBadRequest for parse errors and validator.ValidationErrors
// for validation issues; both are shaped by the central ErrorHandler.
func BindAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return validate.Struct(dst)
}

// ValidateStruct validates any struct value using the shared validator
// instance.
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}
