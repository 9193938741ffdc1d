package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator checks JSON payloads against resource schemas. Compiled schemas
// are cached per schema key.
type Validator struct {
	mu       sync.Mutex
	compiled map[string]*jsonschema.Schema
}

// NewValidator creates a validator with an empty cache
func NewValidator() *Validator {
	return &Validator{compiled: map[string]*jsonschema.Schema{}}
}

// Compile returns the compiled JSON Schema of s
func (v *Validator) Compile(s *Schema) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if cs, ok := v.compiled[s.Key()]; ok {
		return cs, nil
	}

	data, err := json.Marshal(s.Object())
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema %s: %w", s.Name, err)
	}

	url := "inline://" + s.Key()
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema %s: %w", s.Name, err)
	}
	cs, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", s.Name, err)
	}

	v.compiled[s.Key()] = cs
	return cs, nil
}

// Check validates a raw JSON payload
func (v *Validator) Check(s *Schema, payload []byte) error {
	cs, err := v.Compile(s)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	return cs.Validate(doc)
}

// CheckValue validates a Go value by round-tripping it through JSON
func (v *Validator) CheckValue(s *Schema, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	return v.Check(s, data)
}
