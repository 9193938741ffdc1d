package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDoc merges domains into a bare document
func buildDoc(t *testing.T, opts Options, domains ...*Domain) *Document {
	t.Helper()
	b := NewBuilder()
	for _, d := range domains {
		require.NoError(t, d.AddTo(b, opts))
	}
	return &Document{
		OpenAPI:    OpenAPIVersion,
		Info:       Info{Title: "test", Version: "1.0.0"},
		Paths:      b.Paths(),
		Components: Components{Schemas: b.Schemas()},
	}
}

func TestBuilder_AddPaths(t *testing.T) {
	b := NewBuilder()

	require.NoError(t, b.AddPaths("store/group", Paths{"/store/group": PathItem{"get": {}}}))
	require.NoError(t, b.AddPaths("store/brand", Paths{"/store/brand": PathItem{"get": {}}}))

	owner, ok := b.Owner("/store/group")
	assert.True(t, ok)
	assert.Equal(t, "store/group", owner)
	assert.Len(t, b.Paths(), 2)
}

func TestBuilder_DuplicatePath(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddPaths("store/group", Paths{"/store/group": PathItem{"get": {}}}))

	err := b.AddPaths("work/group", Paths{
		"/work/other": PathItem{"get": {}},
		"/store/group": PathItem{"post": {}},
	})
	require.Error(t, err)

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "path", dup.Kind)
	assert.Equal(t, "/store/group", dup.Key)
	assert.Equal(t, "store/group", dup.First)
	assert.Equal(t, "work/group", dup.Second)

	// a rejected fragment inserts nothing
	_, ok := b.Owner("/work/other")
	assert.False(t, ok)
	assert.Equal(t, []string{"get"}, b.Paths()["/store/group"].Verbs())
}

func TestBuilder_DuplicateSchema(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.AddSchema("a", "store.group", Object(nil, nil)))

	err := b.AddSchema("b", "store.group", Object(nil, nil))
	assert.True(t, IsDuplicate(err))
	assert.Contains(t, err.Error(), `duplicate schema "store.group" defined by a and b`)
}

func TestOverlaps(t *testing.T) {
	fragments := []Fragment{
		{Source: "a", Paths: Paths{"/x": PathItem{}, "/y": PathItem{}}},
		{Source: "b", Paths: Paths{"/z": PathItem{}}},
		{Source: "c", Paths: Paths{"/y": PathItem{}}},
	}

	dups := Overlaps(fragments)
	require.Len(t, dups, 1)
	assert.Equal(t, "/y", dups[0].Key)
	assert.Equal(t, "a", dups[0].First)
	assert.Equal(t, "c", dups[0].Second)

	assert.Empty(t, Overlaps(fragments[:2]))
}

func TestDomain_AddTo(t *testing.T) {
	d := &Domain{
		Name:         "store",
		Description:  "Store",
		LegacyCreate: true,
		Resources:    []*Resource{groupResource()},
	}

	doc := buildDoc(t, DefaultOptions(), d)
	assert.True(t, doc.Paths["/store/group"]["post"].LegacyNested)
	assert.Contains(t, doc.Components.Schemas, "store.group")

	doc = buildDoc(t, Options{PreserveLegacyShapes: false}, d)
	assert.False(t, doc.Paths["/store/group"]["post"].LegacyNested)

	tags := d.Tags()
	require.Len(t, tags, 1)
	assert.Equal(t, "store.group", tags[0].Name)

	r, ok := d.Resource("group")
	assert.True(t, ok)
	assert.Equal(t, "store/group", r.ID())
}

func TestDomain_ForeignResource(t *testing.T) {
	d := &Domain{Name: "hr", Resources: []*Resource{groupResource()}}

	_, err := d.Paths(DefaultOptions())
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestDomain_DuplicateResource(t *testing.T) {
	d := &Domain{Name: "store", Resources: []*Resource{groupResource(), groupResource()}}

	_, err := d.Paths(DefaultOptions())
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
	assert.Contains(t, err.Error(), "domain store")
}
