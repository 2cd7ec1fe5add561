package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Psql.RunMigrations)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 500.0, cfg.Pricing.RadiusDensity)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/pricing?sslmode=disable")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_TTL", "15m")
	t.Setenv("PRICING_RADIUS_DENSITY", "750.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9000), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 15*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, 750.5, cfg.Pricing.RadiusDensity)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
