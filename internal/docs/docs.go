// Package docs assembles the global catalog document from the domain
// packages and registers it with swag so gin-swagger can serve it.
package docs

import (
	"fmt"
	"sync"

	"github.com/swaggo/swag"

	"business-catalog-api/internal/catalog"
	"business-catalog-api/internal/catalog/delivery"
	"business-catalog-api/internal/catalog/hr"
	"business-catalog-api/internal/catalog/store"
	"business-catalog-api/internal/catalog/work"
)

// BearerAuth is the security scheme name used by the documented API
const BearerAuth = "bearerAuth"

// Options describe the document header and rendering switches
type Options struct {
	Title       string
	Description string
	Version     string
	ServerURL   string
	Catalog     catalog.Options
}

// DefaultOptions returns the header used when no configuration is given
func DefaultOptions() Options {
	return Options{
		Title:       "Business API",
		Description: "Store, HR, delivery and work order endpoints",
		Version:     "1.0.0",
		ServerURL:   "http://localhost:5090",
		Catalog:     catalog.DefaultOptions(),
	}
}

// Domains returns the business domains in document order
func Domains() []*catalog.Domain {
	return []*catalog.Domain{
		store.Domain(),
		hr.Domain(),
		delivery.Domain(),
		work.Domain(),
	}
}

// Build merges every domain into one OpenAPI document. It fails when two
// resources define the same URL template or schema key.
func Build(opts Options) (*catalog.Document, error) {
	return BuildFrom(opts, Domains())
}

// BuildFrom is Build over an explicit domain list
func BuildFrom(opts Options, domains []*catalog.Domain) (*catalog.Document, error) {
	b := catalog.NewBuilder()
	var tags []catalog.Tag
	for _, d := range domains {
		if err := d.AddTo(b, opts.Catalog); err != nil {
			return nil, fmt.Errorf("failed to build catalog: %w", err)
		}
		tags = append(tags, d.Tags()...)
	}

	doc := &catalog.Document{
		OpenAPI: catalog.OpenAPIVersion,
		Info: catalog.Info{
			Title:       opts.Title,
			Description: opts.Description,
			Version:     opts.Version,
		},
		Tags:  tags,
		Paths: b.Paths(),
		Components: catalog.Components{
			Schemas: b.Schemas(),
			SecuritySchemes: map[string]catalog.SecurityScheme{
				BearerAuth: {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
			},
		},
		Security: []map[string][]string{{BearerAuth: {}}},
	}
	if opts.ServerURL != "" {
		doc.Servers = []catalog.Server{{URL: opts.ServerURL}}
	}
	return doc, nil
}

// Swagger serves a rendered document to swag readers
type Swagger struct {
	mu   sync.RWMutex
	data []byte
}

// ReadDoc implements swag.Swagger
func (s *Swagger) ReadDoc() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return string(s.data)
}

// Set replaces the served document
func (s *Swagger) Set(doc *catalog.Document) error {
	data, err := doc.JSON()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

var (
	registerOnce sync.Once
	instance     = &Swagger{}
)

// Register publishes doc under swag's default instance name. Later calls
// replace the served document.
func Register(doc *catalog.Document) error {
	if err := instance.Set(doc); err != nil {
		return err
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, instance)
	})
	return nil
}
