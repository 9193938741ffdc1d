package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupResource() *Resource {
	s := Entity("store", "group", F("name", String("Laptop"))).Require("name")
	return NewResource(s, CRUD)
}

func TestResource_Naming(t *testing.T) {
	s := Entity("store", "purchase_entry", F("purchase_uuid", UUID()))
	r := NewResource(s, CRUD)

	assert.Equal(t, "store", r.Domain)
	assert.Equal(t, "purchase_entry", r.Name)
	assert.Equal(t, "store/purchase_entry", r.ID())
	assert.Equal(t, "store.purchase_entry", r.Tag())
	assert.Equal(t, "/store/purchase-entry", r.CollectionPath())
	assert.Equal(t, "/store/purchase-entry/{uuid}", r.ItemPath())
	assert.Equal(t, "Purchase Entry", r.DisplayName())
	assert.Equal(t, "Entry", r.Labeled("Entry").DisplayName())
}

func TestResource_GenerateCRUD(t *testing.T) {
	f, err := groupResource().Generate(GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "store/group", f.Source)
	assert.Equal(t, []string{"/store/group", "/store/group/{uuid}"}, f.Paths.Keys())
	assert.Equal(t, []string{"get", "post"}, f.Paths["/store/group"].Verbs())
	assert.Equal(t, []string{"delete", "get", "put"}, f.Paths["/store/group/{uuid}"].Verbs())

	list := f.Paths["/store/group"]["get"]
	assert.Equal(t, []string{"store.group"}, list.Tags)
	assert.Equal(t, "Get all Group", list.Summary)
	assert.Equal(t, "array", list.Responses["200"].Schema().Type)
	assert.Equal(t, "#/components/schemas/store.group", list.Responses["200"].Schema().Items.Ref)

	create := f.Paths["/store/group"]["post"]
	assert.Equal(t, []string{"200", "405"}, create.Responses.Codes())
	assert.Equal(t, ContentJSON, create.RequestBody.ContentType())
	assert.False(t, create.LegacyNested)

	put := f.Paths["/store/group/{uuid}"]["put"]
	assert.Equal(t, []string{"200", "400", "404", "405"}, put.Responses.Codes())
	p, ok := put.Param("uuid")
	require.True(t, ok)
	assert.True(t, p.Required)
	assert.Equal(t, "path", p.In)
	assert.Equal(t, "uuid", p.Schema.Format)

	del := f.Paths["/store/group/{uuid}"]["delete"]
	assert.Equal(t, []string{"200", "400", "404"}, del.Responses.Codes())
}

func TestResource_GenerateNoDelete(t *testing.T) {
	s := Entity("store", "stock", F("product_uuid", UUID()))
	f, err := NewResource(s, NoDelete).Generate(GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"get", "put"}, f.Paths["/store/stock/{uuid}"].Verbs())
}

func TestResource_GenerateLegacyCreate(t *testing.T) {
	f, err := groupResource().Generate(GenerateOptions{LegacyCreate: true})
	require.NoError(t, err)

	assert.True(t, f.Paths["/store/group"]["post"].LegacyNested)
	assert.False(t, f.Paths["/store/group/{uuid}"]["put"].LegacyNested)
}

func TestResource_SubRoutes(t *testing.T) {
	s := Entity("store", "category",
		F("group_uuid", UUID()),
		F("name", String("Gaming")),
	)
	r := NewResource(s, CRUD).ListBy("group_uuid")

	f, err := r.Generate(GenerateOptions{})
	require.NoError(t, err)

	op := f.Paths["/store/category/by/{group_uuid}"]["get"]
	require.NotNil(t, op)
	assert.Equal(t, "Get all Category by group_uuid", op.Summary)
	p, ok := op.Param("group_uuid")
	require.True(t, ok)
	assert.Equal(t, "uuid", p.Schema.Format)

	param, ok := r.SubRoutes[0].ScopeParam()
	assert.True(t, ok)
	assert.Equal(t, "group_uuid", param)
}

func TestResource_SubRouteBody(t *testing.T) {
	r := groupResource().With(SubRoute{
		Path:    "/store/group/import",
		Method:  "post",
		Summary: "Import groups",
		Body:    ArrayOf(Ref("store.group")),
	})
	f, err := r.Generate(GenerateOptions{})
	require.NoError(t, err)

	op := f.Paths["/store/group/import"]["post"]
	assert.Equal(t, []string{"200", "405"}, op.Responses.Codes())
	assert.Equal(t, ContentJSON, op.RequestBody.ContentType())
}

func TestResource_ReportParams(t *testing.T) {
	s := Entity("hr", "punch_log", F("employee_uuid", UUID()))
	r := NewResource(s, CRUD).With(SubRoute{
		Path:    "/hr/employee-attendance-report/by/{employee_uuid}/{year}/{month}",
		Method:  "get",
		Summary: "Report",
	})
	f, err := r.Generate(GenerateOptions{})
	require.NoError(t, err)

	op := f.Paths["/hr/employee-attendance-report/by/{employee_uuid}/{year}/{month}"]["get"]
	require.Len(t, op.Parameters, 3)
	year, _ := op.Param("year")
	assert.Equal(t, "integer", year.Schema.Type)
}

func TestResource_DuplicateSubRoute(t *testing.T) {
	r := groupResource().With(SubRoute{Path: "/store/group", Method: "get", Summary: "again"})

	_, err := r.Generate(GenerateOptions{})
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestResource_Validate(t *testing.T) {
	tests := []struct {
		name     string
		resource func() *Resource
	}{
		{
			name: "multipart without binary",
			resource: func() *Resource {
				return groupResource().Upload()
			},
		},
		{
			name: "no verbs",
			resource: func() *Resource {
				r := groupResource()
				r.Verbs = nil
				return r
			},
		},
		{
			name: "unknown verb",
			resource: func() *Resource {
				r := groupResource()
				r.Verbs = []Verb{"patch"}
				return r
			},
		},
		{
			name: "schema named after another resource",
			resource: func() *Resource {
				r := groupResource()
				r.Name = "brand"
				return r
			},
		},
		{
			name: "hyphenated name",
			resource: func() *Resource {
				r := groupResource()
				r.Name = "purchase-entry"
				return r
			},
		},
		{
			name: "sub-route without summary",
			resource: func() *Resource {
				return groupResource().With(SubRoute{Path: "/store/group/x", Method: "get"})
			},
		},
		{
			name: "sub-route with relative path",
			resource: func() *Resource {
				return groupResource().With(SubRoute{Path: "store/group/x", Method: "get", Summary: "x"})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.resource().Generate(GenerateOptions{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDescriptor))
		})
	}
}

func TestResource_Multipart(t *testing.T) {
	s := Entity("hr", "employee_document",
		F("employee_uuid", UUID()),
		F("file", Binary()),
	)
	f, err := NewResource(s, CRUD).Upload().Generate(GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, ContentMultipart, f.Paths["/hr/employee-document"]["post"].RequestBody.ContentType())
	assert.Equal(t, ContentMultipart, f.Paths["/hr/employee-document/{uuid}"]["put"].RequestBody.ContentType())
}

func TestPaginated(t *testing.T) {
	p := Paginated(Ref("hr.manual_entry"))

	assert.Equal(t, []string{"data", "pagination"}, p.Required)
	assert.Equal(t, "#/components/schemas/hr.manual_entry", p.Properties["data"].Items.Ref)
	assert.Contains(t, p.Properties["pagination"].Properties, "total_pages")

	q := PaginationQuery("orderby")
	require.Len(t, q, 4)
	assert.Equal(t, "orderby", q[3].Name)
	assert.Equal(t, "query", q[3].In)
}
