package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// LintRunRepository implements repositories.LintRunRepository for SQLite
type LintRunRepository struct {
	*BaseRepository[models.LintRun]
}

// NewLintRunRepository creates a new SQLite lint run repository
func NewLintRunRepository(db *sql.DB, logger *logrus.Logger) repositories.LintRunRepository {
	return newLintRunRepository(db, logger)
}

func newLintRunRepository(db dbtx, logger *logrus.Logger) *LintRunRepository {
	return &LintRunRepository{
		BaseRepository: NewBaseRepository[models.LintRun](db, "lint_runs", "lint_run", logger),
	}
}

// Create stores a lint run
func (r *LintRunRepository) Create(ctx context.Context, run *models.LintRun) error {
	if err := run.Validate(); err != nil {
		return repositories.ValidationError(r.entity, run.ID, err)
	}

	query := `INSERT INTO lint_runs (id, snapshot_id, errors, warnings, report, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.executeExec(ctx, "create", query,
		run.ID,
		run.SnapshotID,
		run.Errors,
		run.Warnings,
		run.Report,
		run.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repositories.ConstraintError(r.entity, "snapshot_id", err)
		}
		if isUniqueViolation(err) {
			return repositories.DuplicateError(r.entity, "id", run.ID)
		}
		return repositories.NewRepositoryError("create", r.entity, run.ID, err)
	}
	return nil
}

// GetBySnapshot retrieves the newest lint run of a snapshot
func (r *LintRunRepository) GetBySnapshot(ctx context.Context, snapshotID string) (*models.LintRun, error) {
	if err := r.validateID(snapshotID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, snapshot_id, errors, warnings, report, created_at
		FROM lint_runs
		WHERE snapshot_id = ?
		ORDER BY created_at DESC
		LIMIT 1`

	run := &models.LintRun{}
	err := r.executeQueryRow(ctx, "get_by_snapshot", query, snapshotID).Scan(
		&run.ID,
		&run.SnapshotID,
		&run.Errors,
		&run.Warnings,
		&run.Report,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.entity, snapshotID)
		}
		return nil, repositories.NewRepositoryError("get_by_snapshot", r.entity, snapshotID, err)
	}
	return run, nil
}
