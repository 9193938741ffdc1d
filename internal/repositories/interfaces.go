package repositories

import (
	"context"

	"business-catalog-api/internal/models"
)

// SnapshotRepository stores published catalog snapshots
type SnapshotRepository interface {
	// Create stores a new snapshot. A second snapshot with the same version
	// fails with ErrDuplicateEntry.
	Create(ctx context.Context, snapshot *models.Snapshot) error

	// GetByID retrieves a snapshot including its document
	GetByID(ctx context.Context, id string) (*models.Snapshot, error)

	// GetByVersion retrieves a snapshot including its document
	GetByVersion(ctx context.Context, version string) (*models.Snapshot, error)

	// Latest retrieves the most recently published snapshot
	Latest(ctx context.Context) (*models.Snapshot, error)

	// List retrieves snapshots newest first, without their documents
	List(ctx context.Context, opts ListOptions) ([]*models.Snapshot, error)

	// Count returns the number of stored snapshots
	Count(ctx context.Context) (int64, error)

	// Delete removes a snapshot and its lint runs
	Delete(ctx context.Context, id string) error

	// Exists checks if a snapshot with the given version exists
	Exists(ctx context.Context, version string) (bool, error)
}

// LintRunRepository stores the lint report recorded with each snapshot
type LintRunRepository interface {
	Create(ctx context.Context, run *models.LintRun) error
	GetBySnapshot(ctx context.Context, snapshotID string) (*models.LintRun, error)
}

// TransactionalRepositories provides access to all repositories within one
// transaction
type TransactionalRepositories interface {
	Snapshots() SnapshotRepository
	LintRuns() LintRunRepository
}

// RepositoryManager provides access to all repositories and transaction management
type RepositoryManager interface {
	TransactionalRepositories

	// WithTransaction runs fn against repositories bound to one transaction.
	// The transaction is rolled back when fn returns an error.
	WithTransaction(ctx context.Context, fn func(repos TransactionalRepositories) error) error

	// Close closes all repository connections
	Close() error

	// Health checks the health of the repository connections
	Health(ctx context.Context) error
}

// ListOptions pages through list results
type ListOptions struct {
	Limit  int `form:"limit" json:"limit" validate:"omitempty,min=1,max=500"`
	Offset int `form:"offset" json:"offset" validate:"omitempty,min=0"`
}

// Default and maximum page sizes
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Normalize clamps the options into a valid page
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}
