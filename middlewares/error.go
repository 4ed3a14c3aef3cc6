package middlewares

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the Postgres error code for a unique index conflict,
// raised when two finalizes race on the same invoice number.
const pgUniqueViolation = "23505"

// errorBody is the single error envelope every failed request returns.
type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// ErrorHandler centralizes error responses and keeps messages sanitized.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Fiber errors (use their status code + message)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": errorBody{Message: fe.Message}})
	}

	// 2) Validation errors (422 + per-field info)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make(map[string]string, len(ve))
		for _, f := range ve {
			out[f.Field()] = f.Tag()
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": errorBody{Message: "validation failed", Fields: out},
		})
	}

	// 3) Unique-index conflicts surfaced by the database (lost finalize race)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": errorBody{Message: "duplicate value for a unique field"},
		})
	}

	// 4) Unknown errors (500)
	slog.Error("internal error", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": errorBody{Message: "internal server error"},
	})
}
