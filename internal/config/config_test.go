package config_test

import (
	"testing"

	"storefront/internal/config"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "shop")
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("POSTGRES_SSLMODE", "")
	t.Setenv("DATABASE_URL", "")
}

// Test: DSNはPOSTGRES_*から組み立てる（sslmode省略時はdisable）
func TestConfig_DSN(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=shop sslmode=disable",
		cfg.DSN())
}

// Test: DATABASE_URLがあればそちらを使う
func TestConfig_DSN_DatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/shop")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "postgres://app:secret@db:5432/shop", cfg.DSN())
}
