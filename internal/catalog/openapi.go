package catalog

import (
	"encoding/json"
	"sort"
	"strings"
)

// OpenAPIVersion is the version of the rendered documents
const OpenAPIVersion = "3.0.3"

// Content types accepted by request bodies
const (
	ContentJSON      = "application/json"
	ContentMultipart = "multipart/form-data"
)

// Parameter describes a path or query parameter
type Parameter struct {
	Name        string    `json:"name"`
	In          string    `json:"in"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required"`
	Schema      *Property `json:"schema"`
}

// MediaType wraps the schema of one content type
type MediaType struct {
	Schema *Property `json:"schema"`
}

// RequestBody describes the body accepted by an operation
type RequestBody struct {
	Description string               `json:"description,omitempty"`
	Required    bool                 `json:"required"`
	Content     map[string]MediaType `json:"content"`
}

// ContentType returns the single content type of the body
func (b *RequestBody) ContentType() string {
	for ct := range b.Content {
		return ct
	}
	return ""
}

// Schema returns the schema of the body's content
func (b *RequestBody) Schema() *Property {
	for _, mt := range b.Content {
		return mt.Schema
	}
	return nil
}

// Response describes one documented status code
type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// Schema returns the JSON schema of the response, if any
func (r *Response) Schema() *Property {
	if r == nil {
		return nil
	}
	if mt, ok := r.Content[ContentJSON]; ok {
		return mt.Schema
	}
	return nil
}

// Responses is keyed by HTTP status code
type Responses map[string]*Response

// Codes returns the documented status codes in ascending order
func (r Responses) Codes() []string {
	codes := make([]string, 0, len(r))
	for c := range r {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Operation is one (path, verb) entry
type Operation struct {
	Tags        []string     `json:"tags"`
	Summary     string       `json:"summary"`
	Description string       `json:"description,omitempty"`
	Parameters  []Parameter  `json:"parameters,omitempty"`
	RequestBody *RequestBody `json:"requestBody,omitempty"`
	Responses   Responses    `json:"responses"`

	// LegacyNested renders responses under an extra "responses" key, the
	// shape some existing clients were generated against.
	LegacyNested bool `json:"-"`
}

// MarshalJSON renders the operation, honouring LegacyNested
func (o Operation) MarshalJSON() ([]byte, error) {
	type plain Operation
	if !o.LegacyNested {
		return json.Marshal(plain(o))
	}
	return json.Marshal(struct {
		plain
		Responses map[string]Responses `json:"responses"`
	}{
		plain:     plain(o),
		Responses: map[string]Responses{"responses": o.Responses},
	})
}

// Param returns the named parameter
func (o *Operation) Param(name string) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// PathItem maps lower-case HTTP verbs to operations
type PathItem map[string]*Operation

// Verbs returns the verbs of the item in sorted order
func (p PathItem) Verbs() []string {
	verbs := make([]string, 0, len(p))
	for v := range p {
		verbs = append(verbs, v)
	}
	sort.Strings(verbs)
	return verbs
}

// Paths maps URL templates to their path items
type Paths map[string]PathItem

// Keys returns the URL templates in sorted order
func (p Paths) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Info is the document metadata block
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// Server is a base URL the documented API is reachable at
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Tag groups operations in documentation UIs
type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SecurityScheme declares how clients authenticate against the documented API
type SecurityScheme struct {
	Type         string `json:"type"`
	Scheme       string `json:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty"`
}

// Components holds the reusable schemas
type Components struct {
	Schemas         map[string]*Property      `json:"schemas"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty"`
}

// Document is a complete OpenAPI document
type Document struct {
	OpenAPI    string                `json:"openapi"`
	Info       Info                  `json:"info"`
	Servers    []Server              `json:"servers,omitempty"`
	Tags       []Tag                 `json:"tags,omitempty"`
	Paths      Paths                 `json:"paths"`
	Components Components            `json:"components"`
	Security   []map[string][]string `json:"security,omitempty"`
}

// Domain returns a copy of the document restricted to one domain
func (d *Document) Domain(name string) (*Document, error) {
	prefix := "/" + name + "/"
	out := &Document{
		OpenAPI:  d.OpenAPI,
		Info:     d.Info,
		Servers:  d.Servers,
		Paths:    Paths{},
		Security: d.Security,
		Components: Components{
			Schemas:         map[string]*Property{},
			SecuritySchemes: d.Components.SecuritySchemes,
		},
	}
	out.Info.Title = d.Info.Title + " (" + name + ")"

	for path, item := range d.Paths {
		if strings.HasPrefix(path, prefix) {
			out.Paths[path] = item
		}
	}
	if len(out.Paths) == 0 {
		return nil, ErrUnknownDomain
	}
	for key, s := range d.Components.Schemas {
		if strings.HasPrefix(key, name+".") {
			out.Components.Schemas[key] = s
		}
	}
	for _, t := range d.Tags {
		if strings.HasPrefix(t.Name, name+".") {
			out.Tags = append(out.Tags, t)
		}
	}
	return out, nil
}
