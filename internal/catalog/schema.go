package catalog

import (
	"fmt"
	"strings"
)

// Field is a named property of a resource schema
type Field struct {
	Name string
	Prop *Property
}

// F is shorthand for building a Field
func F(name string, prop *Property) Field {
	return Field{Name: name, Prop: prop}
}

// Schema declares the fields of one resource, which of them are mandatory on
// create and the namespace label used to group it in documentation.
type Schema struct {
	// Name is the resource id, e.g. "store/purchase_entry"
	Name     string
	Fields   []Field
	Required []string
}

// NewSchema creates a schema named domain/name
func NewSchema(domain, name string, fields ...Field) *Schema {
	return &Schema{Name: domain + "/" + name, Fields: fields}
}

// Require sets the create-time required list and returns s
func (s *Schema) Require(names ...string) *Schema {
	s.Required = names
	return s
}

// Audit appends the audit fields every resource carries
func (s *Schema) Audit() *Schema {
	s.Fields = append(s.Fields,
		F("created_by", UUID()),
		F("created_at", DateTime()),
		F("updated_at", DateTime()),
		F("remarks", String("remarks")),
	)
	return s
}

// Key is the component name of the schema, e.g. "store.purchase_entry"
func (s *Schema) Key() string {
	return strings.ReplaceAll(s.Name, "/", ".")
}

// Domain returns the namespace part of the schema name
func (s *Schema) Domain() string {
	if i := strings.IndexByte(s.Name, '/'); i >= 0 {
		return s.Name[:i]
	}
	return ""
}

// Field returns the named field
func (s *Schema) Field(name string) (*Property, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Prop, true
		}
	}
	return nil, false
}

// Has reports whether the schema declares the named field
func (s *Schema) Has(name string) bool {
	_, ok := s.Field(name)
	return ok
}

// FieldNames returns the field names in declaration order
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// HasBinary reports whether any field is a file upload
func (s *Schema) HasBinary() bool {
	for _, f := range s.Fields {
		if f.Prop.IsBinary() {
			return true
		}
	}
	return false
}

// Object renders the schema as an OpenAPI object schema
func (s *Schema) Object() *Property {
	props := make(map[string]*Property, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = f.Prop.Clone()
	}
	var required []string
	if len(s.Required) > 0 {
		required = append(required, s.Required...)
	}
	return Object(required, props)
}

// Example builds an example payload from the field examples
func (s *Schema) Example() map[string]any {
	ex := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if f.Prop.Example != nil {
			ex[f.Name] = f.Prop.Example
		}
	}
	return ex
}

// Without returns a copy of s without the named fields. Used to document
// responses that never echo sensitive values.
func (s *Schema) Without(names ...string) *Schema {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	out := &Schema{Name: s.Name}
	for _, f := range s.Fields {
		if !drop[f.Name] {
			out.Fields = append(out.Fields, f)
		}
	}
	for _, r := range s.Required {
		if !drop[r] {
			out.Required = append(out.Required, r)
		}
	}
	return out
}

// Check verifies that every required name is a declared field
func (s *Schema) Check() error {
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Prop == nil {
			return fmt.Errorf("schema %s: field %s has no property", s.Name, f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema %s: field %s declared twice", s.Name, f.Name)
		}
		seen[f.Name] = true
	}
	for _, r := range s.Required {
		if !seen[r] {
			return fmt.Errorf("schema %s: required field %s is not declared", s.Name, r)
		}
	}
	return nil
}

// Entity creates a schema with the uuid identifier first, the given fields
// and the audit fields last
func Entity(domain, name string, fields ...Field) *Schema {
	all := make([]Field, 0, len(fields)+1)
	all = append(all, F("uuid", UUID()))
	all = append(all, fields...)
	return NewSchema(domain, name, all...).Audit()
}
