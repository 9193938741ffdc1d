package sqlite

import (
	"context"
	"database/sql"

	"business-catalog-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// SQLiteRepositoryManager implements repositories.RepositoryManager
type SQLiteRepositoryManager struct {
	db        *sql.DB
	logger    *logrus.Logger
	snapshots *SnapshotRepository
	lintRuns  *LintRunRepository
}

// NewSQLiteRepositoryManager creates a repository manager over an open database
func NewSQLiteRepositoryManager(db *sql.DB, logger *logrus.Logger) *SQLiteRepositoryManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &SQLiteRepositoryManager{
		db:        db,
		logger:    logger,
		snapshots: newSnapshotRepository(db, logger),
		lintRuns:  newLintRunRepository(db, logger),
	}
}

// Snapshots returns the snapshot repository
func (m *SQLiteRepositoryManager) Snapshots() repositories.SnapshotRepository {
	return m.snapshots
}

// LintRuns returns the lint run repository
func (m *SQLiteRepositoryManager) LintRuns() repositories.LintRunRepository {
	return m.lintRuns
}

// WithTransaction executes fn within a transaction
func (m *SQLiteRepositoryManager) WithTransaction(ctx context.Context, fn func(repos repositories.TransactionalRepositories) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		m.logger.WithError(err).Error("Failed to begin transaction")
		return repositories.TransactionError("begin", err)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&txRepositories{tx: tx, logger: m.logger}); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			m.logger.WithError(rollbackErr).Error("Failed to rollback transaction after error")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		m.logger.WithError(err).Error("Failed to commit transaction")
		return repositories.TransactionError("commit", err)
	}
	m.logger.Debug("Transaction committed successfully")
	return nil
}

// Close closes the underlying database
func (m *SQLiteRepositoryManager) Close() error {
	return m.db.Close()
}

// Health pings the database
func (m *SQLiteRepositoryManager) Health(ctx context.Context) error {
	if err := m.db.PingContext(ctx); err != nil {
		return repositories.NewRepositoryError("health", "database", "", err)
	}
	return nil
}

// txRepositories binds the repositories to one transaction
type txRepositories struct {
	tx     *sql.Tx
	logger *logrus.Logger
}

func (t *txRepositories) Snapshots() repositories.SnapshotRepository {
	return newSnapshotRepository(t.tx, t.logger)
}

func (t *txRepositories) LintRuns() repositories.LintRunRepository {
	return newLintRunRepository(t.tx, t.logger)
}
