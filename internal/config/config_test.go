package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreCSV, cfg.StoreDriver)
	assert.Equal(t, "bookings.csv", cfg.BookingsFile)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 30, cfg.RateLimitPM)
	assert.False(t, cfg.AdminEnabled())
	assert.False(t, cfg.S3Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", " Postgres ")
	t.Setenv("BOOKINGS_FILE", "/tmp/other.csv")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("S3_BUCKET", "calendars")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, "/tmp/other.csv", cfg.BookingsFile)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.True(t, cfg.S3Enabled())
	assert.True(t, cfg.IsProduction())
}

func TestAdminEnabled_RequiresPrivateJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")

	cfg := Load()
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.AdminEnabled())

	t.Setenv("JWT_SECRET", "  ")
	assert.False(t, Load().AdminEnabled())

	t.Setenv("JWT_SECRET", "a-long-private-secret")
	assert.True(t, Load().AdminEnabled())
}
