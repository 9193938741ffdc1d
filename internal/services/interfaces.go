package services

import (
	"context"

	"business-catalog-api/internal/adapters/storage"
	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/models"
	"business-catalog-api/internal/repositories"

	"github.com/tidwall/gjson"
)

// CatalogService serves the rendered catalog and manages its published
// snapshots
type CatalogService interface {
	// Document returns the live catalog
	Document() *catalog.Document

	// Render returns the full document, or one domain's document when domain
	// is not empty, as JSON or YAML
	Render(domain string, format Format) ([]byte, error)

	// Checksum is the sha256 of the rendered live document
	Checksum() string

	Routes(domain string) ([]catalog.Route, error)
	Verbs(path string) ([]string, error)
	Query(path string) (gjson.Result, error)

	// Lint returns the consistency report of the live document
	Lint() *catalog.Report

	// Check validates a create payload for a resource
	Check(domain, resource string, payload []byte) (*CheckResult, error)

	// Export writes openapi.json, openapi.yaml and one document per domain
	Export(ctx context.Context, store storage.ArtifactStore) (*ExportResult, error)

	// Publish records the live document as a named snapshot
	Publish(ctx context.Context, req *PublishRequest) (*PublishResult, error)

	ListSnapshots(ctx context.Context, opts repositories.ListOptions) ([]*models.Snapshot, error)
	GetSnapshot(ctx context.Context, version string) (*models.Snapshot, error)
	GetLintRun(ctx context.Context, version string) (*models.LintRun, error)
	DeleteSnapshot(ctx context.Context, version string) error

	// Diff compares two snapshots. CurrentVersion names the live document.
	Diff(ctx context.Context, from, to string) (*models.Diff, error)
}

// Format selects the rendering of a document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// CurrentVersion refers to the live, unpublished document in Diff
const CurrentVersion = models.CurrentVersion

// PublishRequest names a new snapshot
type PublishRequest struct {
	Version     string `json:"version" validate:"required,max=64"`
	Notes       string `json:"notes" validate:"max=1000"`
	PublishedBy string `json:"-"`
}

// PublishResult is the outcome of a publish. Unchanged is set when the live
// document equals the latest snapshot and nothing was stored.
type PublishResult struct {
	Snapshot  *models.Snapshot `json:"snapshot"`
	Lint      *catalog.Report  `json:"lint"`
	Unchanged bool             `json:"unchanged"`
}

// CheckResult reports whether a payload matches a resource's create schema
type CheckResult struct {
	Resource string         `json:"resource"`
	Valid    bool           `json:"valid"`
	Errors   []PayloadError `json:"errors,omitempty"`
}

// PayloadError is one schema violation
type PayloadError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// ExportResult lists the written artifacts
type ExportResult struct {
	Checksum  string             `json:"checksum"`
	Artifacts []storage.Artifact `json:"artifacts"`
}
