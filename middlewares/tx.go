package middlewares

import (
	"log/slog"

	"timberbill-backend/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Tx opens a per-request DB transaction for mutating methods, so a rejected
// operation never leaves a half-applied bill behind. Order: run AFTER
// Idempotency() so replay records aren't tied to the handler TX.
func Tx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		default:
			return c.Next()
		}

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				slog.Error("tx commit failed", "error", e)
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		c.Locals("tx", tx)

		err = c.Next()
		return err
	}
}

// RequestDB returns the per-request transaction when one is open, the shared
// connection otherwise.
func RequestDB(c *fiber.Ctx) *gorm.DB {
	if tx, ok := c.Locals("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return database.DB
}
