package lambda

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-catalog-api/internal/config"
)

func TestConnectionManager_Lifecycle(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cm := &ConnectionManager{logger: logger}
	assert.False(t, cm.IsHealthy())

	cfg := &config.Config{
		Catalog:   config.CatalogConfig{Title: "Business API", Version: "1.0.0", PreserveLegacyShapes: true},
		Database:  config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "catalog.db"), MaxOpenConns: 1, ConnMaxLifetime: time.Hour},
		Export:    config.ExportConfig{Dir: t.TempDir()},
		JWT:       config.JWTConfig{ExpiryHours: 1},
		RateLimit: config.RateLimitConfig{RPS: 1, Burst: 1},
	}
	require.NoError(t, cm.Initialize(cfg))
	require.NoError(t, cm.Initialize(cfg))
	assert.True(t, cm.IsHealthy())

	container, err := cm.GetContainer()
	require.NoError(t, err)
	assert.NotNil(t, container.CatalogService)
	assert.Nil(t, container.Repositories())

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy())
}
