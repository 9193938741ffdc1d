package catalog

// Example values shared by every builder so rendered documents are byte-stable
const (
	ExampleUUID     = "2c56e7f9-8b5f-4c9a-9b8c-3f1e0c6d7a10"
	ExampleDateTime = "2024-01-01T10:00:00Z"
	ExampleDate     = "2024-01-01"
)

// Property is an OpenAPI schema object. It describes a single field of a
// resource as well as inline request and response bodies.
type Property struct {
	Ref         string               `json:"$ref,omitempty"`
	Type        string               `json:"type,omitempty"`
	Format      string               `json:"format,omitempty"`
	Description string               `json:"description,omitempty"`
	Enum        []string             `json:"enum,omitempty"`
	Items       *Property            `json:"items,omitempty"`
	Required    []string             `json:"required,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Example     any                  `json:"example,omitempty"`
}

// UUID returns a string property holding a uuid
func UUID() *Property {
	return &Property{Type: "string", Format: "uuid", Example: ExampleUUID}
}

// String returns a plain string property
func String(example string) *Property {
	return &Property{Type: "string", Example: example}
}

// Integer returns an integer property
func Integer(example int) *Property {
	return &Property{Type: "integer", Example: example}
}

// Number returns a floating point property
func Number(example float64) *Property {
	return &Property{Type: "number", Example: example}
}

// Boolean returns a boolean property
func Boolean(example bool) *Property {
	return &Property{Type: "boolean", Example: example}
}

// DateTime returns a date-time string property
func DateTime() *Property {
	return &Property{Type: "string", Format: "date-time", Example: ExampleDateTime}
}

// Date returns a date string property
func Date() *Property {
	return &Property{Type: "string", Format: "date", Example: ExampleDate}
}

// Email returns an email string property
func Email(example string) *Property {
	return &Property{Type: "string", Format: "email", Example: example}
}

// Password returns a password string property
func Password() *Property {
	return &Property{Type: "string", Format: "password", Example: "1234"}
}

// Binary returns a file upload property
func Binary() *Property {
	return &Property{Type: "string", Format: "binary"}
}

// Enum returns a string property restricted to values. The first value is the example.
func Enum(values ...string) *Property {
	p := &Property{Type: "string", Enum: values}
	if len(values) > 0 {
		p.Example = values[0]
	}
	return p
}

// ArrayOf returns an array of items
func ArrayOf(items *Property) *Property {
	return &Property{Type: "array", Items: items}
}

// UUIDArray returns an array of uuid strings
func UUIDArray() *Property {
	p := ArrayOf(&Property{Type: "string", Format: "uuid"})
	p.Example = []string{ExampleUUID}
	return p
}

// StringArray returns an array of strings
func StringArray(example ...string) *Property {
	p := ArrayOf(&Property{Type: "string"})
	if len(example) > 0 {
		p.Example = example
	}
	return p
}

// Ref returns a reference to a component schema
func Ref(key string) *Property {
	return &Property{Ref: RefPrefix + key}
}

// Object returns an inline object with the given properties
func Object(required []string, props map[string]*Property) *Property {
	return &Property{Type: "object", Required: required, Properties: props}
}

// RefPrefix is the JSON pointer prefix of component schemas
const RefPrefix = "#/components/schemas/"

// Describe sets the description and returns p
func (p *Property) Describe(description string) *Property {
	p.Description = description
	return p
}

// IsBinary reports whether p is a file upload
func (p *Property) IsBinary() bool {
	return p != nil && p.Type == "string" && p.Format == "binary"
}

// RefKey returns the component key p points at, or "" for inline schemas
func (p *Property) RefKey() string {
	if p == nil || len(p.Ref) <= len(RefPrefix) || p.Ref[:len(RefPrefix)] != RefPrefix {
		return ""
	}
	return p.Ref[len(RefPrefix):]
}

// Clone returns a deep copy of p
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	c := *p
	if p.Enum != nil {
		c.Enum = append([]string(nil), p.Enum...)
	}
	if p.Required != nil {
		c.Required = append([]string(nil), p.Required...)
	}
	c.Items = p.Items.Clone()
	if p.Properties != nil {
		c.Properties = make(map[string]*Property, len(p.Properties))
		for k, v := range p.Properties {
			c.Properties[k] = v.Clone()
		}
	}
	return &c
}
