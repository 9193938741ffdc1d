package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Verb is a CRUD capability of a resource
type Verb string

const (
	VerbList   Verb = "list"
	VerbCreate Verb = "create"
	VerbRead   Verb = "read"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

// CRUD is the full verb set: GET/POST on the collection, GET/PUT/DELETE on {uuid}
var CRUD = []Verb{VerbList, VerbCreate, VerbRead, VerbUpdate, VerbDelete}

// NoDelete is CRUD without DELETE
var NoDelete = []Verb{VerbList, VerbCreate, VerbRead, VerbUpdate}

// SubRoute is an extra route of a resource: scoped listings, detail
// envelopes, paginated lists and reports.
type SubRoute struct {
	Path        string `validate:"required,startswith=/"`
	Method      string `validate:"required,oneof=get post put delete"`
	Summary     string `validate:"required"`
	Description string
	Query       []Parameter

	// Scope is the schema whose fields back a by/{param} placeholder.
	// Defaults to the resource schema.
	Scope *Schema

	// Body is an optional JSON request body
	Body *Property

	// Response defaults to an array of the resource schema
	Response *Property
}

// ScopeParam returns the placeholder directly following "/by/", if any
func (s *SubRoute) ScopeParam() (string, bool) {
	i := strings.Index(s.Path, "/by/{")
	if i < 0 {
		return "", false
	}
	rest := s.Path[i+len("/by/{"):]
	j := strings.IndexByte(rest, '}')
	if j < 0 {
		return "", false
	}
	return rest[:j], true
}

// Resource describes one CRUD entity of the business API. Every resource is
// fed through Generate so that the near-identical get/post/put/delete blocks
// come from a single place.
type Resource struct {
	Domain string  `validate:"required,lowercase,alpha"`
	Name   string  `validate:"required,excludesall=/- "`
	Label  string  `validate:"omitempty"`
	Schema *Schema `validate:"required"`
	Verbs  []Verb  `validate:"required,min=1,dive,oneof=list create read update delete"`

	// Multipart documents create and update bodies as multipart/form-data
	Multipart bool

	// UpdateResponse overrides the body returned by PUT {uuid}
	UpdateResponse *Schema

	SubRoutes []SubRoute `validate:"dive"`
}

var descriptorValidator = validator.New()

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_]+)\}`)

// ID returns the resource id, e.g. "store/purchase_entry"
func (r *Resource) ID() string {
	return r.Domain + "/" + r.Name
}

// Tag returns the documentation tag, e.g. "store.purchase_entry"
func (r *Resource) Tag() string {
	return r.Domain + "." + r.Name
}

// CollectionPath returns the collection URL template, e.g. "/store/purchase-entry"
func (r *Resource) CollectionPath() string {
	return "/" + r.Domain + "/" + strings.ReplaceAll(r.Name, "_", "-")
}

// ItemPath returns the singular URL template, e.g. "/store/purchase-entry/{uuid}"
func (r *Resource) ItemPath() string {
	return r.CollectionPath() + "/{uuid}"
}

// DisplayName returns the label used in summaries
func (r *Resource) DisplayName() string {
	if r.Label != "" {
		return r.Label
	}
	return cases.Title(language.English).String(strings.ReplaceAll(r.Name, "_", " "))
}

// Has reports whether the resource supports verb
func (r *Resource) Has(verb Verb) bool {
	for _, v := range r.Verbs {
		if v == verb {
			return true
		}
	}
	return false
}

// Validate checks the descriptor before generation
func (r *Resource) Validate() error {
	if err := descriptorValidator.Struct(r); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, r.ID(), err)
	}
	if err := r.Schema.Check(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	if r.Schema.Name != r.ID() {
		return fmt.Errorf("%w: %s: schema is named %s", ErrInvalidDescriptor, r.ID(), r.Schema.Name)
	}
	if r.Multipart && !r.Schema.HasBinary() {
		return fmt.Errorf("%w: %s: multipart body without a binary field", ErrInvalidDescriptor, r.ID())
	}
	return nil
}

// GenerateOptions tweaks the generated operations
type GenerateOptions struct {
	// LegacyCreate nests the POST responses under an extra "responses" key
	LegacyCreate bool
}

// Generate expands the descriptor into its path fragment
func (r *Resource) Generate(opts GenerateOptions) (Fragment, error) {
	if err := r.Validate(); err != nil {
		return Fragment{}, err
	}

	paths := Paths{}
	ref := Ref(r.Schema.Key())
	tags := []string{r.Tag()}
	label := r.DisplayName()

	collection := PathItem{}
	if r.Has(VerbList) {
		collection["get"] = &Operation{
			Tags:        tags,
			Summary:     "Get all " + label,
			Description: "All " + label,
			Responses: Responses{
				"200": jsonResponse("successful operation", ArrayOf(ref)),
			},
		}
	}
	if r.Has(VerbCreate) {
		collection["post"] = &Operation{
			Tags:        tags,
			Summary:     "Create a new " + label,
			Description: "Create a new " + label,
			RequestBody: r.body(ref),
			Responses: Responses{
				"200": jsonResponse("successful operation", ref),
				"405": {Description: "Validation exception"},
			},
			LegacyNested: opts.LegacyCreate,
		}
	}
	if len(collection) > 0 {
		paths[r.CollectionPath()] = collection
	}

	item := PathItem{}
	uuidParam := pathParam("uuid", label+" to get")
	if r.Has(VerbRead) {
		item["get"] = &Operation{
			Tags:        tags,
			Summary:     "Get a " + label + " by uuid",
			Description: "Get a " + label + " by uuid",
			Parameters:  []Parameter{uuidParam},
			Responses: Responses{
				"200": jsonResponse("successful operation", ref),
				"400": {Description: "Invalid UUID supplied"},
				"404": {Description: label + " not found"},
			},
		}
	}
	if r.Has(VerbUpdate) {
		updated := ref
		if r.UpdateResponse != nil {
			updated = r.UpdateResponse.Object()
		}
		item["put"] = &Operation{
			Tags:        tags,
			Summary:     "Update an existing " + label,
			Description: "Update an existing " + label,
			Parameters:  []Parameter{pathParam("uuid", label+" to update")},
			RequestBody: r.body(ref),
			Responses: Responses{
				"200": jsonResponse("successful operation", updated),
				"400": {Description: "Invalid UUID supplied"},
				"404": {Description: label + " not found"},
				"405": {Description: "Validation exception"},
			},
		}
	}
	if r.Has(VerbDelete) {
		item["delete"] = &Operation{
			Tags:        tags,
			Summary:     "Delete a " + label,
			Description: "Delete a " + label,
			Parameters:  []Parameter{pathParam("uuid", label+" to delete")},
			Responses: Responses{
				"200": {Description: "successful operation"},
				"400": {Description: "Invalid UUID supplied"},
				"404": {Description: label + " not found"},
			},
		}
	}
	if len(item) > 0 {
		paths[r.ItemPath()] = item
	}

	for i := range r.SubRoutes {
		sub := &r.SubRoutes[i]
		op := r.subOperation(sub, tags, ref)
		pi, ok := paths[sub.Path]
		if !ok {
			pi = PathItem{}
			paths[sub.Path] = pi
		}
		if _, taken := pi[sub.Method]; taken {
			return Fragment{}, &DuplicateError{Kind: "path", Key: sub.Method + " " + sub.Path, First: r.ID(), Second: r.ID()}
		}
		pi[sub.Method] = op
	}

	return Fragment{Source: r.ID(), Paths: paths}, nil
}

func (r *Resource) subOperation(sub *SubRoute, tags []string, ref *Property) *Operation {
	response := sub.Response
	if response == nil {
		response = ArrayOf(ref)
	}
	op := &Operation{
		Tags:        tags,
		Summary:     sub.Summary,
		Description: sub.Description,
		Responses: Responses{
			"200": jsonResponse("successful operation", response),
		},
	}
	for _, m := range placeholderRe.FindAllStringSubmatch(sub.Path, -1) {
		op.Parameters = append(op.Parameters, pathParam(m[1], m[1]))
	}
	op.Parameters = append(op.Parameters, sub.Query...)
	if sub.Body != nil {
		op.RequestBody = &RequestBody{
			Required: true,
			Content:  map[string]MediaType{ContentJSON: {Schema: sub.Body}},
		}
		op.Responses["405"] = &Response{Description: "Validation exception"}
	}
	return op
}

func (r *Resource) body(ref *Property) *RequestBody {
	ct := ContentJSON
	if r.Multipart {
		ct = ContentMultipart
	}
	return &RequestBody{
		Description: r.DisplayName() + " object",
		Required:    true,
		Content:     map[string]MediaType{ct: {Schema: ref}},
	}
}

func jsonResponse(description string, schema *Property) *Response {
	return &Response{
		Description: description,
		Content:     map[string]MediaType{ContentJSON: {Schema: schema}},
	}
}

func pathParam(name, description string) Parameter {
	return Parameter{
		Name:        name,
		In:          "path",
		Description: description,
		Required:    true,
		Schema:      paramSchema(name),
	}
}

func paramSchema(name string) *Property {
	switch {
	case name == "uuid" || strings.HasSuffix(name, "_uuid"):
		return &Property{Type: "string", Format: "uuid"}
	case name == "year" || name == "month":
		return &Property{Type: "integer"}
	default:
		return &Property{Type: "string"}
	}
}

// QueryParam declares an optional query parameter
func QueryParam(name string, schema *Property) Parameter {
	return Parameter{Name: name, In: "query", Description: name, Schema: schema}
}

// PaginationQuery returns page, limit, sort and the order key parameter.
// The order key is spelled differently by different endpoints.
func PaginationQuery(orderKey string) []Parameter {
	return []Parameter{
		QueryParam("page", &Property{Type: "integer", Example: 1}),
		QueryParam("limit", &Property{Type: "integer", Example: 10}),
		QueryParam("sort", &Property{Type: "string", Enum: []string{"asc", "desc"}, Example: "desc"}),
		QueryParam(orderKey, &Property{Type: "string", Example: "created_at"}),
	}
}

// Paginated wraps items in the v2 list envelope
func Paginated(items *Property) *Property {
	return Object([]string{"data", "pagination"}, map[string]*Property{
		"data": ArrayOf(items),
		"pagination": Object(nil, map[string]*Property{
			"page":          Integer(1),
			"limit":         Integer(10),
			"total_entries": Integer(100),
			"total_pages":   Integer(10),
		}),
	})
}

// Nested renders parent with the child collection under key
func Nested(parent *Schema, key string, child *Schema) *Property {
	obj := parent.Object()
	obj.Properties[key] = ArrayOf(Ref(child.Key()))
	return obj
}

// NewResource creates a resource from its schema. Domain and name are taken
// from the schema name.
func NewResource(s *Schema, verbs []Verb) *Resource {
	r := &Resource{Schema: s, Verbs: verbs}
	if i := strings.IndexByte(s.Name, '/'); i >= 0 {
		r.Domain, r.Name = s.Name[:i], s.Name[i+1:]
	}
	return r
}

// ListBy adds a GET {collection}/by/{param} listing scoped by a foreign key
func (r *Resource) ListBy(param string) *Resource {
	return r.With(SubRoute{
		Path:    r.CollectionPath() + "/by/{" + param + "}",
		Method:  "get",
		Summary: "Get all " + r.DisplayName() + " by " + param,
	})
}

// With appends a sub-route
func (r *Resource) With(subs ...SubRoute) *Resource {
	r.SubRoutes = append(r.SubRoutes, subs...)
	return r
}

// Upload documents create and update bodies as multipart/form-data
func (r *Resource) Upload() *Resource {
	r.Multipart = true
	return r
}

// Labeled overrides the display name
func (r *Resource) Labeled(label string) *Resource {
	r.Label = label
	return r
}
