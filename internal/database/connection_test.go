package database

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestManager(t *testing.T) *ConnectionManager {
	t.Helper()
	cfg := DefaultConnectionConfig()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "nested", "catalog.db")
	cfg.Logger = quietLogger()

	cm := NewConnectionManager(cfg)
	require.NoError(t, cm.Connect())
	t.Cleanup(func() { cm.Close() })
	return cm
}

func TestConnectionManager_Connect(t *testing.T) {
	cm := newTestManager(t)

	require.NotNil(t, cm.GetDB())
	assert.NoError(t, cm.HealthCheck(context.Background()))
	assert.Error(t, cm.Connect(), "second connect must fail")

	mm := cm.GetMigrationManager()
	require.NotNil(t, mm)
	assert.NoError(t, mm.ValidateSchema())

	status, err := mm.GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(2), status.Version)
	assert.False(t, status.Dirty)
	assert.True(t, status.Applied)
}

func TestConnectionManager_Close(t *testing.T) {
	cm := newTestManager(t)

	require.NoError(t, cm.Close())
	assert.Nil(t, cm.GetDB())
	assert.Nil(t, cm.GetMigrationManager())
	assert.Error(t, cm.HealthCheck(context.Background()))
	assert.NoError(t, cm.Close())
}

func TestMigrationManager_Rollback(t *testing.T) {
	cm := newTestManager(t)
	mm := cm.GetMigrationManager()

	require.NoError(t, mm.RollbackMigration())
	status, err := mm.GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(1), status.Version)
	assert.Error(t, mm.ValidateSchema(), "lint_runs is gone")

	require.NoError(t, mm.RunMigrations())
	assert.NoError(t, mm.ValidateSchema())
}

func TestMigrationManager_Idempotent(t *testing.T) {
	cm := newTestManager(t)
	mm := cm.GetMigrationManager()

	assert.NoError(t, mm.RunMigrations())
	assert.NoError(t, mm.RunMigrations())
}
