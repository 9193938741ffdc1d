package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Verbs(t *testing.T) {
	doc := buildDoc(t, DefaultOptions(), &Domain{Name: "store", Resources: []*Resource{groupResource()}})

	verbs, ok := doc.Verbs("/store/group")
	require.True(t, ok)
	assert.Equal(t, []string{"get", "post"}, verbs)

	verbs, ok = doc.Verbs("/store/group/{uuid}")
	require.True(t, ok)
	assert.Equal(t, []string{"delete", "get", "put"}, verbs)

	_, ok = doc.Verbs("/store/nothing")
	assert.False(t, ok)
}

func TestDocument_Operation(t *testing.T) {
	doc := buildDoc(t, DefaultOptions(), &Domain{Name: "store", Resources: []*Resource{groupResource()}})

	op, err := doc.Operation("/store/group/{uuid}", "PUT")
	require.NoError(t, err)
	assert.Equal(t, "Update an existing Group", op.Summary)

	_, err = doc.Operation("/store/group", "delete")
	assert.ErrorIs(t, err, ErrUnknownPath)
	_, err = doc.Operation("/store/nothing", "get")
	assert.ErrorIs(t, err, ErrUnknownPath)
}

func TestDocument_Routes(t *testing.T) {
	work := &Domain{Name: "work", Resources: []*Resource{
		NewResource(Entity("work", "zone", F("name", String("North"))), CRUD),
	}}
	doc := buildDoc(t, DefaultOptions(), &Domain{Name: "store", Resources: []*Resource{groupResource()}}, work)

	routes := doc.Routes("")
	require.Len(t, routes, 10)
	assert.Equal(t, Route{
		Path:    "/store/group",
		Method:  "GET",
		Tags:    []string{"store.group"},
		Summary: "Get all Group",
		Codes:   []string{"200"},
	}, routes[0])

	assert.Len(t, doc.Routes("work"), 5)
	assert.Empty(t, doc.Routes("hr"))
	assert.Equal(t, []string{"store", "work"}, doc.Domains())
}

func TestQuery(t *testing.T) {
	doc := buildDoc(t, Options{}, &Domain{Name: "store", Resources: []*Resource{groupResource()}})
	data, err := doc.JSON()
	require.NoError(t, err)

	res, err := Query(data, OperationPath("/store/group/{uuid}", "GET")+".summary")
	require.NoError(t, err)
	assert.Equal(t, "Get a Group by uuid", res.String())

	res, err = Query(data, "components.schemas.store\\.group.required")
	require.NoError(t, err)
	require.Len(t, res.Array(), 1)
	assert.Equal(t, "name", res.Array()[0].String())

	_, err = Query(data, "paths.nothing")
	assert.ErrorIs(t, err, ErrUnknownPath)

	_, err = Query([]byte("{"), "openapi")
	assert.Error(t, err)
}
