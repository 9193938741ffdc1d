package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"
)

// Publish stores the live document and its lint report as a new snapshot.
// A version that already exists is refused; a document identical to the
// latest snapshot is not stored again.
func (s *catalogService) Publish(ctx context.Context, req *PublishRequest) (*PublishResult, error) {
	if s.repos == nil {
		return nil, ErrSnapshotsDisabled
	}
	if req == nil {
		return nil, fmt.Errorf("%w: publish request cannot be nil", ErrInvalidRequest)
	}
	req.Version = strings.TrimSpace(req.Version)
	if err := s.validator.Struct(req); err != nil {
		return nil, repositories.ValidationError("snapshot", req.Version, err)
	}
	if !models.IsValidVersion(req.Version) {
		return nil, repositories.ValidationError("snapshot", req.Version, fmt.Errorf("invalid version %q", req.Version))
	}
	if req.Version == CurrentVersion {
		return nil, repositories.ValidationError("snapshot", req.Version, fmt.Errorf("version %q is reserved for the live document", CurrentVersion))
	}

	if !s.report.OK() {
		return nil, fmt.Errorf("%w: %d errors", ErrLintFailed, s.report.Errors())
	}

	exists, err := s.repos.Snapshots().Exists(ctx, req.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to check snapshot version: %w", err)
	}
	if exists {
		return nil, repositories.DuplicateError("snapshot", "version", req.Version)
	}

	latest, err := s.repos.Snapshots().Latest(ctx)
	if err != nil && !repositories.IsNotFound(err) {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	if latest != nil && latest.Checksum == s.checksum {
		s.logger.WithFields(logrus.Fields{
			"version":  req.Version,
			"latest":   latest.Version,
			"checksum": s.checksum,
		}).Warn("Catalog unchanged since latest snapshot, nothing published")
		return &PublishResult{Snapshot: latest, Lint: s.report, Unchanged: true}, nil
	}

	report, err := json.Marshal(s.report)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lint report: %w", err)
	}

	snapshot := models.NewSnapshot(req.Version, s.checksum, s.data)
	snapshot.PathCount = len(s.doc.Paths)
	snapshot.OperationCount = s.operationCount()
	snapshot.Notes = req.Notes
	snapshot.PublishedBy = req.PublishedBy

	err = s.repos.WithTransaction(ctx, func(repos repositories.TransactionalRepositories) error {
		if err := repos.Snapshots().Create(ctx, snapshot); err != nil {
			return err
		}
		run := models.NewLintRun(snapshot.ID, s.report.Errors(), s.report.Warnings(), report)
		return repos.LintRuns().Create(ctx, run)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish snapshot: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"version":    snapshot.Version,
		"checksum":   snapshot.Checksum,
		"paths":      snapshot.PathCount,
		"operations": snapshot.OperationCount,
	}).Info("Catalog snapshot published")

	return &PublishResult{Snapshot: snapshot, Lint: s.report}, nil
}

// ListSnapshots lists snapshot summaries newest first
func (s *catalogService) ListSnapshots(ctx context.Context, opts repositories.ListOptions) ([]*models.Snapshot, error) {
	if s.repos == nil {
		return nil, ErrSnapshotsDisabled
	}
	if err := s.validator.Struct(opts); err != nil {
		return nil, repositories.ValidationError("snapshot", "", err)
	}
	return s.repos.Snapshots().List(ctx, opts)
}

// GetSnapshot retrieves a snapshot by version
func (s *catalogService) GetSnapshot(ctx context.Context, version string) (*models.Snapshot, error) {
	if s.repos == nil {
		return nil, ErrSnapshotsDisabled
	}
	return s.repos.Snapshots().GetByVersion(ctx, version)
}

// GetLintRun retrieves the lint report recorded with a snapshot
func (s *catalogService) GetLintRun(ctx context.Context, version string) (*models.LintRun, error) {
	snapshot, err := s.GetSnapshot(ctx, version)
	if err != nil {
		return nil, err
	}
	return s.repos.LintRuns().GetBySnapshot(ctx, snapshot.ID)
}

// DeleteSnapshot removes a snapshot by version
func (s *catalogService) DeleteSnapshot(ctx context.Context, version string) error {
	snapshot, err := s.GetSnapshot(ctx, version)
	if err != nil {
		return err
	}
	if err := s.repos.Snapshots().Delete(ctx, snapshot.ID); err != nil {
		return err
	}
	s.logger.WithField("version", version).Info("Catalog snapshot deleted")
	return nil
}

// Diff compares the documents of two snapshots
func (s *catalogService) Diff(ctx context.Context, from, to string) (*models.Diff, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidRequest)
	}
	fromDoc, err := s.documentOf(ctx, from)
	if err != nil {
		return nil, err
	}
	toDoc, err := s.documentOf(ctx, to)
	if err != nil {
		return nil, err
	}

	diff := DiffDocuments(fromDoc, toDoc)
	diff.From = from
	diff.To = to
	return diff, nil
}

func (s *catalogService) documentOf(ctx context.Context, version string) ([]byte, error) {
	if version == CurrentVersion {
		return s.data, nil
	}
	snapshot, err := s.GetSnapshot(ctx, version)
	if err != nil {
		return nil, err
	}
	return snapshot.Document, nil
}

// DiffDocuments compares two rendered OpenAPI documents. Operations are
// named "METHOD /path".
func DiffDocuments(from, to []byte) *models.Diff {
	fromPaths, fromOps := pathsAndOperations(from)
	toPaths, toOps := pathsAndOperations(to)
	fromSchemas := gjson.GetBytes(from, "components.schemas")
	toSchemas := gjson.GetBytes(to, "components.schemas")

	diff := &models.Diff{
		AddedPaths:        missing(toPaths, fromPaths),
		RemovedPaths:      missing(fromPaths, toPaths),
		AddedOperations:   missing(toOps, fromOps),
		RemovedOperations: missing(fromOps, toOps),
		AddedSchemas:      missing(keys(toSchemas), keys(fromSchemas)),
		RemovedSchemas:    missing(keys(fromSchemas), keys(toSchemas)),
	}

	fromSchemas.ForEach(func(key, before gjson.Result) bool {
		after := toSchemas.Get(escapeKey(key.String()))
		if !after.Exists() {
			return true
		}
		oldReq := stringList(before.Get("required"))
		newReq := stringList(after.Get("required"))
		change := models.RequiredChange{
			Schema:  key.String(),
			Added:   missing(newReq, oldReq),
			Removed: missing(oldReq, newReq),
		}
		if len(change.Added) > 0 || len(change.Removed) > 0 {
			diff.ChangedRequired = append(diff.ChangedRequired, change)
		}
		return true
	})
	sort.Slice(diff.ChangedRequired, func(i, j int) bool {
		return diff.ChangedRequired[i].Schema < diff.ChangedRequired[j].Schema
	})
	return diff
}

func pathsAndOperations(data []byte) ([]string, []string) {
	var paths, ops []string
	gjson.GetBytes(data, "paths").ForEach(func(path, item gjson.Result) bool {
		paths = append(paths, path.String())
		item.ForEach(func(verb, _ gjson.Result) bool {
			ops = append(ops, strings.ToUpper(verb.String())+" "+path.String())
			return true
		})
		return true
	})
	return paths, ops
}

func keys(obj gjson.Result) []string {
	var out []string
	obj.ForEach(func(key, _ gjson.Result) bool {
		out = append(out, key.String())
		return true
	})
	return out
}

func stringList(arr gjson.Result) []string {
	var out []string
	for _, v := range arr.Array() {
		out = append(out, v.String())
	}
	return out
}

// missing returns the sorted elements of a that are not in b
func missing(a, b []string) []string {
	seen := make(map[string]bool, len(b))
	for _, v := range b {
		seen[v] = true
	}
	out := []string{}
	for _, v := range a {
		if !seen[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func escapeKey(key string) string {
	return strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`).Replace(key)
}
