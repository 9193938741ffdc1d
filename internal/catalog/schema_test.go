package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_FieldOrder(t *testing.T) {
	s := Entity("store", "group", F("name", String("Laptop")))

	assert.Equal(t, "store/group", s.Name)
	assert.Equal(t, "store.group", s.Key())
	assert.Equal(t, "store", s.Domain())
	assert.Equal(t,
		[]string{"uuid", "name", "created_by", "created_at", "updated_at", "remarks"},
		s.FieldNames())
}

func TestSchema_Without(t *testing.T) {
	s := Entity("hr", "user",
		F("name", String("John")),
		F("pass", Password()),
	).Require("name", "pass")

	public := s.Without("pass")

	assert.False(t, public.Has("pass"))
	assert.True(t, public.Has("name"))
	assert.Equal(t, []string{"name"}, public.Required)
	// the original is untouched
	assert.True(t, s.Has("pass"))
	assert.Equal(t, []string{"name", "pass"}, s.Required)
}

func TestSchema_Check(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		wantErr string
	}{
		{
			name:   "valid",
			schema: Entity("store", "brand", F("name", String("x"))).Require("name"),
		},
		{
			name:    "undeclared required field",
			schema:  Entity("store", "brand").Require("name"),
			wantErr: "required field name is not declared",
		},
		{
			name:    "duplicate field",
			schema:  NewSchema("store", "brand", F("name", String("a")), F("name", String("b"))),
			wantErr: "declared twice",
		},
		{
			name:    "nil property",
			schema:  NewSchema("store", "brand", F("name", nil)),
			wantErr: "has no property",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Check()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSchema_ObjectAndExample(t *testing.T) {
	s := Entity("hr", "employee_document",
		F("employee_uuid", UUID()),
		F("file", Binary()),
	).Require("employee_uuid")

	obj := s.Object()
	assert.Equal(t, "object", obj.Type)
	assert.Equal(t, []string{"employee_uuid"}, obj.Required)
	assert.True(t, obj.Properties["file"].IsBinary())

	// mutating the rendered object must not leak back into the schema
	obj.Properties["employee_uuid"].Format = "changed"
	prop, _ := s.Field("employee_uuid")
	assert.Equal(t, "uuid", prop.Format)

	ex := s.Example()
	assert.Equal(t, ExampleUUID, ex["employee_uuid"])
	assert.NotContains(t, ex, "file")
	assert.True(t, s.HasBinary())
}
