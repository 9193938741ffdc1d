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

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "1.0.0", cfg.Catalog.Version)
	assert.Equal(t, "http://localhost:5090", cfg.Catalog.ServerURL)
	assert.True(t, cfg.Catalog.PreserveLegacyShapes)
	assert.Equal(t, "./data/catalog.db", cfg.Database.Path)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "./out", cfg.Export.Dir)
	assert.Equal(t, 24, cfg.JWT.ExpiryHours)
	assert.Equal(t, float64(100), cfg.RateLimit.RPS)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CATALOG_PRESERVE_LEGACY_SHAPES", "false")
	t.Setenv("CATALOG_VERSION", "2.1.0")
	t.Setenv("SNAPSHOT_DB_PATH", "/tmp/x.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("RATE_LIMIT_RPS", "5.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Catalog.PreserveLegacyShapes)
	assert.Equal(t, "2.1.0", cfg.Catalog.Version)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 5.5, cfg.RateLimit.RPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"empty title", func(c *Config) { c.Catalog.Title = "" }},
		{"empty database path", func(c *Config) { c.Database.Path = "" }},
		{"no connections", func(c *Config) { c.Database.MaxOpenConns = 0 }},
		{"empty export dir", func(c *Config) { c.Export.Dir = "" }},
		{"zero expiry", func(c *Config) { c.JWT.ExpiryHours = 0 }},
		{"zero rate", func(c *Config) { c.RateLimit.RPS = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestAdaptForServerless(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	// outside lambda nothing changes
	out := AdaptForServerless(cfg)
	assert.Equal(t, "./data/catalog.db", out.Database.Path)
	assert.Equal(t, "server", GetDeploymentMode())
}
