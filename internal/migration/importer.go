// Package migration imports previously exported OpenAPI documents into the
// snapshot store
package migration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"
)

var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

// SnapshotImporter loads documents laid out as <dir>/<version>.json or
// <dir>/<version>/openapi.json
type SnapshotImporter struct {
	repos  repositories.RepositoryManager
	logger *logrus.Logger
	dir    string
}

// NewSnapshotImporter creates a new importer
func NewSnapshotImporter(repos repositories.RepositoryManager, dir string, logger *logrus.Logger) *SnapshotImporter {
	if logger == nil {
		logger = logrus.New()
	}
	return &SnapshotImporter{repos: repos, logger: logger, dir: dir}
}

// ImportResult contains the results of an import
type ImportResult struct {
	Imported []string
	Skipped  []string
	Warnings []string
}

type candidate struct {
	version string
	path    string
}

// Import stores every document whose version is not yet known. All
// snapshots are written in one transaction.
func (m *SnapshotImporter) Import(ctx context.Context, publishedBy string) (*ImportResult, error) {
	m.logger.WithField("dir", m.dir).Info("Starting snapshot import...")

	candidates, warnings, err := m.scan()
	if err != nil {
		return nil, err
	}
	result := &ImportResult{Warnings: warnings}

	err = m.repos.WithTransaction(ctx, func(repos repositories.TransactionalRepositories) error {
		for _, c := range candidates {
			exists, err := repos.Snapshots().Exists(ctx, c.version)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped = append(result.Skipped, c.version)
				continue
			}

			snapshot, err := load(c)
			if err != nil {
				result.Warnings = append(result.Warnings, err.Error())
				continue
			}
			snapshot.PublishedBy = publishedBy
			snapshot.Notes = "imported from " + filepath.Base(c.path)

			if err := repos.Snapshots().Create(ctx, snapshot); err != nil {
				return fmt.Errorf("failed to import %s: %w", c.version, err)
			}
			result.Imported = append(result.Imported, c.version)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.WithFields(logrus.Fields{
		"imported": len(result.Imported),
		"skipped":  len(result.Skipped),
		"warnings": len(result.Warnings),
	}).Info("Snapshot import completed")

	return result, nil
}

func (m *SnapshotImporter) scan() ([]candidate, []string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read import directory: %w", err)
	}

	var (
		out      []candidate
		warnings []string
	)
	for _, entry := range entries {
		var c candidate
		switch {
		case entry.IsDir():
			c = candidate{version: entry.Name(), path: filepath.Join(m.dir, entry.Name(), "openapi.json")}
			if _, err := os.Stat(c.path); err != nil {
				continue
			}
		case strings.HasSuffix(entry.Name(), ".json"):
			c = candidate{version: strings.TrimSuffix(entry.Name(), ".json"), path: filepath.Join(m.dir, entry.Name())}
		default:
			continue
		}
		if !models.IsValidVersion(c.version) {
			warnings = append(warnings, fmt.Sprintf("skipping %s: invalid version %q", c.path, c.version))
			continue
		}
		if c.version == models.CurrentVersion {
			warnings = append(warnings, fmt.Sprintf("skipping %s: version %q is reserved", c.path, c.version))
			continue
		}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, warnings, nil
}

func load(c candidate) (*models.Snapshot, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("skipping %s: %v", c.path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("skipping %s: invalid JSON", c.path)
	}
	if !strings.HasPrefix(gjson.GetBytes(data, "openapi").String(), "3.") {
		return nil, fmt.Errorf("skipping %s: not an OpenAPI 3 document", c.path)
	}

	snapshot := models.NewSnapshot(c.version, catalog.ChecksumOf(data), data)
	gjson.GetBytes(data, "paths").ForEach(func(_, item gjson.Result) bool {
		snapshot.PathCount++
		item.ForEach(func(method, _ gjson.Result) bool {
			if httpMethods[method.String()] {
				snapshot.OperationCount++
			}
			return true
		})
		return true
	})
	return snapshot, nil
}
