package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "DEV")
	t.Setenv("DATABASE_URL", "file:test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 0.19, cfg.Invoice.TaxRate)
	assert.Equal(t, "hotel.events", cfg.AMQP.Exchange)
	assert.Empty(t, cfg.Cache.MemcachedAddr)
	assert.Contains(t, cfg.CORS.AllowOrigins, "http://localhost:3000")
}

func TestLoad_RejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", defaultJWTSecret)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("JWT_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
}

func TestValidate_TaxRate(t *testing.T) {
	cfg := NewTestConfig()
	cfg.Invoice.TaxRate = 1.5
	assert.Error(t, cfg.Validate())

	cfg.Invoice.TaxRate = 0.19
	assert.NoError(t, cfg.Validate())
}
