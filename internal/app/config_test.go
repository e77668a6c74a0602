package app

import (
	"testing"

	"go-employees/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "SESSION_SECRET", "DB_DRIVER", "DB_DSN", "DB_MAX_RETRIES"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultSessionSecret, cfg.SessionSecret)
	assert.Equal(t, connection.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, DefaultSQLitePath, cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost dbname=employees")
	t.Setenv("DB_MAX_RETRIES", "nope")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, connection.DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "host=localhost dbname=employees", cfg.Database.DSN)
	assert.Equal(t, 5, cfg.Database.MaxRetries)
	assert.True(t, cfg.IsProduction())
}
