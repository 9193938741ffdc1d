package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"business-catalog-api/internal/database"
	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChecksum = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"

func setupTestDB(t *testing.T) (*sql.DB, *logrus.Logger) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	db, err := database.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.NewMigrationManager(db, logger).RunMigrations())
	return db, logger
}

func newTestSnapshot(version string, created time.Time) *models.Snapshot {
	s := models.NewSnapshot(version, testChecksum, []byte(`{"openapi":"3.0.3"}`))
	s.PathCount = 3
	s.OperationCount = 9
	s.Notes = "initial"
	s.PublishedBy = "ci"
	s.CreatedAt = created
	return s
}

func TestSnapshotRepository_CreateAndGet(t *testing.T) {
	db, logger := setupTestDB(t)
	repo := NewSnapshotRepository(db, logger)
	ctx := context.Background()

	s := newTestSnapshot("1.0.0", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, s))

	byID, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Version, byID.Version)
	assert.Equal(t, s.Document, byID.Document)
	assert.Equal(t, 9, byID.OperationCount)

	byVersion, err := repo.GetByVersion(ctx, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, s.ID, byVersion.ID)

	exists, err := repo.Exists(ctx, "1.0.0")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "2.0.0")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSnapshotRepository_DuplicateVersion(t *testing.T) {
	db, logger := setupTestDB(t)
	repo := NewSnapshotRepository(db, logger)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestSnapshot("1.0.0", time.Now().UTC())))
	err := repo.Create(ctx, newTestSnapshot("1.0.0", time.Now().UTC()))
	require.Error(t, err)
	assert.True(t, repositories.IsDuplicate(err))
}

func TestSnapshotRepository_InvalidSnapshot(t *testing.T) {
	db, logger := setupTestDB(t)
	repo := NewSnapshotRepository(db, logger)

	s := newTestSnapshot("not a version", time.Now().UTC())
	err := repo.Create(context.Background(), s)
	require.Error(t, err)
	assert.True(t, repositories.IsValidation(err))
}

func TestSnapshotRepository_NotFound(t *testing.T) {
	db, logger := setupTestDB(t)
	repo := NewSnapshotRepository(db, logger)
	ctx := context.Background()

	_, err := repo.GetByVersion(ctx, "9.9.9")
	assert.True(t, repositories.IsNotFound(err))

	_, err = repo.Latest(ctx)
	assert.True(t, repositories.IsNotFound(err))

	_, err = repo.GetByID(ctx, "")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
}

func TestSnapshotRepository_ListAndLatest(t *testing.T) {
	db, logger := setupTestDB(t)
	repo := NewSnapshotRepository(db, logger)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range []string{"1.0.0", "1.1.0", "2.0.0"} {
		require.NoError(t, repo.Create(ctx, newTestSnapshot(v, base.Add(time.Duration(i)*time.Hour))))
	}

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest.Version)

	list, err := repo.List(ctx, repositories.ListOptions{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2.0.0", list[0].Version)
	assert.Empty(t, list[0].Document, "list omits documents")

	page, err := repo.List(ctx, repositories.ListOptions{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "1.1.0", page[0].Version)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSnapshotRepository_DeleteCascadesLintRuns(t *testing.T) {
	db, logger := setupTestDB(t)
	snapshots := NewSnapshotRepository(db, logger)
	runs := NewLintRunRepository(db, logger)
	ctx := context.Background()

	s := newTestSnapshot("1.0.0", time.Now().UTC())
	require.NoError(t, snapshots.Create(ctx, s))
	require.NoError(t, runs.Create(ctx, models.NewLintRun(s.ID, 0, 2, []byte(`{"findings":[]}`))))

	require.NoError(t, snapshots.Delete(ctx, s.ID))
	_, err := runs.GetBySnapshot(ctx, s.ID)
	assert.True(t, repositories.IsNotFound(err))

	err = snapshots.Delete(ctx, s.ID)
	assert.True(t, repositories.IsNotFound(err))
}

func TestLintRunRepository_UnknownSnapshot(t *testing.T) {
	db, logger := setupTestDB(t)
	runs := NewLintRunRepository(db, logger)

	err := runs.Create(context.Background(), models.NewLintRun("0b6c4d8e-5d54-4f43-9a53-2f1d6d3c7c11", 0, 0, []byte(`{}`)))
	require.Error(t, err)
	assert.True(t, repositories.IsConstraint(err))
}

func TestRepositoryManager_WithTransaction(t *testing.T) {
	db, logger := setupTestDB(t)
	manager := NewSQLiteRepositoryManager(db, logger)
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		s := newTestSnapshot("1.0.0", time.Now().UTC())
		err := manager.WithTransaction(ctx, func(repos repositories.TransactionalRepositories) error {
			if err := repos.Snapshots().Create(ctx, s); err != nil {
				return err
			}
			return repos.LintRuns().Create(ctx, models.NewLintRun(s.ID, 0, 1, []byte(`{}`)))
		})
		require.NoError(t, err)

		run, err := manager.LintRuns().GetBySnapshot(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, run.Warnings)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := manager.WithTransaction(ctx, func(repos repositories.TransactionalRepositories) error {
			if err := repos.Snapshots().Create(ctx, newTestSnapshot("2.0.0", time.Now().UTC())); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		exists, err := manager.Snapshots().Exists(ctx, "2.0.0")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	assert.NoError(t, manager.Health(ctx))
}
