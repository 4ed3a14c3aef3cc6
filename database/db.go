package database

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Connect loads .env (when present) and opens the Postgres connection.
func Connect() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		env("DB_NAME", "timberbill"),
		env("DB_PORT", "5432"),
		env("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected", "host", env("DB_HOST", "localhost"), "db", env("DB_NAME", "timberbill"))
}
