package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"business-catalog-api/internal/adapters/storage"
	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/docs"
	"business-catalog-api/internal/repositories"
)

// CatalogConfig configures the catalog service
type CatalogConfig struct {
	Docs docs.Options

	// Domains overrides the built-in business domains
	Domains []*catalog.Domain
}

// catalogService implements the CatalogService interface
type catalogService struct {
	doc       *catalog.Document
	domains   []*catalog.Domain
	opts      catalog.Options
	data      []byte
	checksum  string
	report    *catalog.Report
	checker   *catalog.Validator
	repos     repositories.RepositoryManager
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewCatalogService builds and lints the catalog. repos may be nil, which
// disables the snapshot operations.
func NewCatalogService(cfg *CatalogConfig, repos repositories.RepositoryManager, logger *logrus.Logger) (CatalogService, error) {
	if cfg == nil {
		cfg = &CatalogConfig{Docs: docs.DefaultOptions()}
	}
	if logger == nil {
		logger = logrus.New()
	}

	domains := cfg.Domains
	if len(domains) == 0 {
		domains = docs.Domains()
	}

	doc, err := docs.BuildFrom(cfg.Docs, domains)
	if err != nil {
		return nil, err
	}
	data, err := doc.JSON()
	if err != nil {
		return nil, err
	}

	checker := catalog.NewValidator()
	report := catalog.Lint(doc, domains, cfg.Docs.Catalog, checker)

	s := &catalogService{
		doc:       doc,
		domains:   domains,
		opts:      cfg.Docs.Catalog,
		data:      data,
		checksum:  catalog.ChecksumOf(data),
		report:    report,
		checker:   checker,
		repos:     repos,
		validator: validator.New(),
		logger:    logger,
	}

	logger.WithFields(logrus.Fields{
		"paths":    len(doc.Paths),
		"schemas":  len(doc.Components.Schemas),
		"checksum": s.checksum,
		"errors":   report.Errors(),
		"warnings": report.Warnings(),
	}).Info("Catalog built")

	return s, nil
}

// Document returns the live catalog
func (s *catalogService) Document() *catalog.Document {
	return s.doc
}

// Checksum returns the sha256 of the rendered live document
func (s *catalogService) Checksum() string {
	return s.checksum
}

// Render renders the document or one domain of it
func (s *catalogService) Render(domain string, format Format) ([]byte, error) {
	doc := s.doc
	if domain != "" {
		d, err := s.doc.Domain(domain)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, domain)
		}
		doc = d
	}

	switch format {
	case FormatJSON, "":
		if doc == s.doc {
			return s.data, nil
		}
		return doc.JSON()
	case FormatYAML:
		return doc.YAML()
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidRequest, format)
	}
}

// Routes lists the operations of the catalog or of one domain
func (s *catalogService) Routes(domain string) ([]catalog.Route, error) {
	routes := s.doc.Routes(domain)
	if domain != "" && len(routes) == 0 {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownDomain, domain)
	}
	return routes, nil
}

// Verbs returns the documented verbs of a URL template
func (s *catalogService) Verbs(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: path is required", ErrInvalidRequest)
	}
	verbs, ok := s.doc.Verbs(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownPath, path)
	}
	return verbs, nil
}

// Query evaluates a gjson path against the rendered document
func (s *catalogService) Query(path string) (gjson.Result, error) {
	if strings.TrimSpace(path) == "" {
		return gjson.Result{}, fmt.Errorf("%w: query is required", ErrInvalidRequest)
	}
	return catalog.Query(s.data, path)
}

// Lint returns the report computed when the catalog was built
func (s *catalogService) Lint() *catalog.Report {
	return s.report
}

// Check validates payload against the create schema of domain/resource.
// Resource names are accepted in URL form ("purchase-entry") too.
func (s *catalogService) Check(domain, resource string, payload []byte) (*CheckResult, error) {
	r, err := s.resource(domain, resource)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{Resource: r.ID(), Valid: true}
	err = s.checker.Check(r.Schema, payload)
	if err == nil {
		return result, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	result.Valid = false
	for _, e := range ve.BasicOutput().Errors {
		if e.Error == "" || strings.HasPrefix(e.Error, "doesn't validate with") {
			continue
		}
		loc := e.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		result.Errors = append(result.Errors, PayloadError{Location: loc, Message: e.Error})
	}
	if len(result.Errors) == 0 {
		result.Errors = []PayloadError{{Location: "/", Message: ve.Error()}}
	}
	return result, nil
}

func (s *catalogService) resource(domain, name string) (*catalog.Resource, error) {
	for _, d := range s.domains {
		if d.Name != domain {
			continue
		}
		if r, ok := d.Resource(strings.ReplaceAll(name, "-", "_")); ok {
			return r, nil
		}
		return nil, fmt.Errorf("%w: %s/%s", catalog.ErrUnknownResource, domain, name)
	}
	return nil, fmt.Errorf("%w: %s", catalog.ErrUnknownDomain, domain)
}

// Export writes the rendered artifacts, replacing earlier exports
func (s *catalogService) Export(ctx context.Context, store storage.ArtifactStore) (*ExportResult, error) {
	yamlData, err := s.doc.YAML()
	if err != nil {
		return nil, err
	}
	lintData, err := json.MarshalIndent(s.report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render lint report: %w", err)
	}

	files := []struct {
		key  string
		data []byte
	}{
		{"openapi.json", s.data},
		{"openapi.yaml", yamlData},
		{"lint.json", lintData},
	}
	for _, name := range s.doc.Domains() {
		data, err := s.Render(name, FormatJSON)
		if err != nil {
			return nil, err
		}
		files = append(files, struct {
			key  string
			data []byte
		}{name + ".json", data})
	}

	result := &ExportResult{Checksum: s.checksum}
	for _, f := range files {
		opts := &storage.PutOptions{ContentType: storage.ContentType(f.key), Overwrite: true}
		if err := store.Put(ctx, f.key, f.data, opts); err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", f.key, err)
		}
		a, err := store.Stat(ctx, f.key)
		if err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", f.key, err)
		}
		result.Artifacts = append(result.Artifacts, *a)
	}

	s.logger.WithFields(logrus.Fields{
		"artifacts": len(result.Artifacts),
		"checksum":  s.checksum,
	}).Info("Catalog exported")
	return result, nil
}

func (s *catalogService) operationCount() int {
	n := 0
	for _, item := range s.doc.Paths {
		n += len(item)
	}
	return n
}
