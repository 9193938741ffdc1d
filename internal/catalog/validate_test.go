package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendorSchema() *Schema {
	return Entity("store", "vendor",
		F("name", String("Star Tech")),
		F("email", Email("vendor@example.com")),
		F("type", Enum("local", "foreign")),
		F("credit", Number(10.5)),
	).Require("name")
}

func TestValidator_Check(t *testing.T) {
	v := NewValidator()
	s := vendorSchema()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{name: "minimal", payload: `{"name":"Acme"}`},
		{name: "full", payload: `{"name":"Acme","email":"a@b.com","type":"foreign","credit":1}`},
		{name: "missing required", payload: `{"email":"a@b.com"}`, wantErr: true},
		{name: "bad enum", payload: `{"name":"Acme","type":"martian"}`, wantErr: true},
		{name: "bad email", payload: `{"name":"Acme","email":"nope"}`, wantErr: true},
		{name: "bad uuid", payload: `{"name":"Acme","uuid":"123"}`, wantErr: true},
		{name: "wrong type", payload: `{"name":"Acme","credit":"ten"}`, wantErr: true},
		{name: "not json", payload: `{"name":`, wantErr: true},
		{name: "large number", payload: `{"name":"Acme","credit":12345678901234567890.125}`},
		{name: "array payload", payload: `[{"name":"Acme"}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Check(s, []byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewValidator()
	s := vendorSchema()

	a, err := v.Compile(s)
	require.NoError(t, err)
	b, err := v.Compile(s)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestValidator_CheckValue(t *testing.T) {
	v := NewValidator()
	s := vendorSchema()

	assert.NoError(t, v.CheckValue(s, s.Example()))
	assert.Error(t, v.CheckValue(s, map[string]any{"name": 1}))
}
