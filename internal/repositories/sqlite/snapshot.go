package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// SnapshotRepository implements repositories.SnapshotRepository for SQLite
type SnapshotRepository struct {
	*BaseRepository[models.Snapshot]
}

// NewSnapshotRepository creates a new SQLite snapshot repository
func NewSnapshotRepository(db *sql.DB, logger *logrus.Logger) repositories.SnapshotRepository {
	return newSnapshotRepository(db, logger)
}

func newSnapshotRepository(db dbtx, logger *logrus.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		BaseRepository: NewBaseRepository[models.Snapshot](db, "catalog_snapshots", "snapshot", logger),
	}
}

const snapshotColumns = `id, version, checksum, document, path_count, operation_count, notes, published_by, created_at`

const snapshotSummaryColumns = `id, version, checksum, path_count, operation_count, notes, published_by, created_at`

// Create stores a new snapshot
func (r *SnapshotRepository) Create(ctx context.Context, s *models.Snapshot) error {
	if err := s.Validate(); err != nil {
		return repositories.ValidationError(r.entity, s.ID, err)
	}

	query := `INSERT INTO catalog_snapshots (` + snapshotColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.executeExec(ctx, "create", query,
		s.ID,
		s.Version,
		s.Checksum,
		s.Document,
		s.PathCount,
		s.OperationCount,
		s.Notes,
		s.PublishedBy,
		s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.DuplicateError(r.entity, "version", s.Version)
		}
		return repositories.NewRepositoryError("create", r.entity, s.ID, err)
	}
	return nil
}

// GetByID retrieves a snapshot by ID
func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (*models.Snapshot, error) {
	if err := r.validateID(id); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "get_by_id", "id", id)
}

// GetByVersion retrieves a snapshot by version
func (r *SnapshotRepository) GetByVersion(ctx context.Context, version string) (*models.Snapshot, error) {
	if err := r.validateID(version); err != nil {
		return nil, err
	}
	return r.getOne(ctx, "get_by_version", "version", version)
}

func (r *SnapshotRepository) getOne(ctx context.Context, op, column, value string) (*models.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM catalog_snapshots WHERE ` + column + ` = ?`
	s, err := scanSnapshot(r.executeQueryRow(ctx, op, query, value), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.entity, value)
		}
		return nil, repositories.NewRepositoryError(op, r.entity, value, err)
	}
	return s, nil
}

// Latest retrieves the most recently published snapshot
func (r *SnapshotRepository) Latest(ctx context.Context) (*models.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM catalog_snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1`
	s, err := scanSnapshot(r.executeQueryRow(ctx, "latest", query), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.entity, "latest")
		}
		return nil, repositories.NewRepositoryError("latest", r.entity, "", err)
	}
	return s, nil
}

// List retrieves snapshot summaries newest first
func (r *SnapshotRepository) List(ctx context.Context, opts repositories.ListOptions) ([]*models.Snapshot, error) {
	opts = opts.Normalize()
	query := `SELECT ` + snapshotSummaryColumns + ` FROM catalog_snapshots ORDER BY created_at DESC, rowid DESC LIMIT ? OFFSET ?`

	rows, err := r.executeQuery(ctx, "list", query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows, false)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", r.entity, "", err)
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", r.entity, "", err)
	}
	return snapshots, nil
}

// Count returns the number of stored snapshots
func (r *SnapshotRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}

// Delete removes a snapshot; its lint runs cascade
func (r *SnapshotRepository) Delete(ctx context.Context, id string) error {
	if err := r.validateID(id); err != nil {
		return err
	}
	result, err := r.executeExec(ctx, "delete", `DELETE FROM catalog_snapshots WHERE id = ?`, id)
	if err != nil {
		return repositories.NewRepositoryError("delete", r.entity, id, err)
	}
	return r.checkRowsAffected(result, "delete", id)
}

// Exists checks if a snapshot with the given version exists
func (r *SnapshotRepository) Exists(ctx context.Context, version string) (bool, error) {
	return r.existsBy(ctx, "version", version)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row scanner, withDocument bool) (*models.Snapshot, error) {
	s := &models.Snapshot{}
	dest := []interface{}{&s.ID, &s.Version, &s.Checksum}
	if withDocument {
		dest = append(dest, &s.Document)
	}
	dest = append(dest, &s.PathCount, &s.OperationCount, &s.Notes, &s.PublishedBy, &s.CreatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return s, nil
}
