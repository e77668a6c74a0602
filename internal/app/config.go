package app

import (
	"os"
	"strconv"
	"time"

	"go-employees/internal/shared/connection"
)

const (
	DefaultSessionSecret = "dev-secret"
	DefaultPort          = "5000"
	DefaultSQLitePath    = "employees.db"
)

type Config struct {
	Env           string
	Port          string
	SessionSecret string
	Database      connection.Config
	// WriteRate and WriteBurst bound POST requests per client address.
	WriteRate  float64
	WriteBurst int
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads the process environment. Call godotenv.Load first to
// pick up a .env file.
func LoadConfig() Config {
	return Config{
		Env:           os.Getenv("APP_ENV"),
		Port:          getenv("PORT", DefaultPort),
		SessionSecret: getenv("SESSION_SECRET", DefaultSessionSecret),
		Database: connection.Config{
			Driver:     getenv("DB_DRIVER", connection.DriverSQLite),
			DSN:        getenv("DB_DSN", DefaultSQLitePath),
			MaxRetries: getenvInt("DB_MAX_RETRIES", 5),
			RetryDelay: 5 * time.Second,
		},
		WriteRate:  5,
		WriteBurst: 20,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
