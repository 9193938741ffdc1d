package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestOperation_MarshalLegacy(t *testing.T) {
	op := &Operation{
		Tags:         []string{"store.group"},
		Summary:      "Create a new Group",
		Responses:    Responses{"200": {Description: "successful operation"}},
		LegacyNested: true,
	}

	data, err := json.Marshal(op)
	require.NoError(t, err)

	assert.Equal(t, "successful operation", gjson.GetBytes(data, "responses.responses.200.description").String())
	assert.False(t, gjson.GetBytes(data, "responses.200").Exists())
	assert.Equal(t, "Create a new Group", gjson.GetBytes(data, "summary").String())

	op.LegacyNested = false
	data, err = json.Marshal(op)
	require.NoError(t, err)
	assert.Equal(t, "successful operation", gjson.GetBytes(data, "responses.200.description").String())
	assert.False(t, gjson.GetBytes(data, "responses.responses").Exists())
}

func TestDocument_Domain(t *testing.T) {
	work := &Domain{Name: "work", Resources: []*Resource{
		NewResource(Entity("work", "zone", F("name", String("North"))), CRUD),
	}}
	store := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	doc := buildDoc(t, DefaultOptions(), store, work)
	doc.Tags = append(store.Tags(), work.Tags()...)

	sub, err := doc.Domain("work")
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/zone", "/work/zone/{uuid}"}, sub.Paths.Keys())
	assert.Contains(t, sub.Components.Schemas, "work.zone")
	assert.NotContains(t, sub.Components.Schemas, "store.group")
	require.Len(t, sub.Tags, 1)
	assert.Equal(t, "test (work)", sub.Info.Title)

	// the source document is unchanged
	assert.Len(t, doc.Paths, 4)

	_, err = doc.Domain("billing")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestDocument_RenderStable(t *testing.T) {
	doc := buildDoc(t, DefaultOptions(), &Domain{Name: "store", Resources: []*Resource{groupResource()}})

	a, err := doc.JSON()
	require.NoError(t, err)
	b, err := doc.JSON()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	sum, err := doc.Checksum()
	require.NoError(t, err)
	assert.Equal(t, ChecksumOf(a), sum)
	assert.Len(t, sum, 64)

	y, err := doc.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(y), "openapi: 3.0.3")
	assert.Contains(t, string(y), "/store/group/{uuid}:")
}
