package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_Clean(t *testing.T) {
	d := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	opts := Options{PreserveLegacyShapes: false}

	report := Lint(buildDoc(t, opts, d), []*Domain{d}, opts, nil)
	assert.True(t, report.OK())
	assert.Empty(t, report.Findings)
}

func TestLint_LegacyShapeWarning(t *testing.T) {
	d := &Domain{Name: "store", LegacyCreate: true, Resources: []*Resource{groupResource()}}
	opts := DefaultOptions()

	report := Lint(buildDoc(t, opts, d), []*Domain{d}, opts, nil)
	assert.True(t, report.OK())
	assert.Equal(t, 1, report.Warnings())
	findings := report.ByRule(RuleLegacyShape)
	require.Len(t, findings, 1)
	assert.Equal(t, "/store/group", findings[0].Path)
}

func TestLint_UUIDRequiredOnCreate(t *testing.T) {
	s := Entity("store", "brand", F("name", String("x"))).Require("uuid", "name")
	d := &Domain{Name: "store", Resources: []*Resource{NewResource(s, CRUD)}}

	report := Lint(buildDoc(t, Options{}, d), []*Domain{d}, Options{}, nil)
	assert.False(t, report.OK())
	assert.Len(t, report.ByRule(RuleUUIDOnCreate), 1)
}

func TestLint_ScopeField(t *testing.T) {
	s := Entity("store", "rack", F("name", String("Rack 1")))
	d := &Domain{Name: "store", Resources: []*Resource{NewResource(s, CRUD).ListBy("room_uuid")}}

	report := Lint(buildDoc(t, Options{}, d), []*Domain{d}, Options{}, nil)
	findings := report.ByRule(RuleScopeField)
	require.Len(t, findings, 1)
	assert.Equal(t, "/store/rack/by/{room_uuid}", findings[0].Path)
	assert.Equal(t, LevelError, findings[0].Level)
}

func TestLint_ExampleValid(t *testing.T) {
	s := Entity("store", "size", F("name", &Property{Type: "integer", Example: "large"}))
	d := &Domain{Name: "store", Resources: []*Resource{NewResource(s, CRUD)}}

	report := Lint(buildDoc(t, Options{}, d), []*Domain{d}, Options{}, nil)
	assert.Len(t, report.ByRule(RuleExampleValid), 1)
}

func TestLint_SensitiveField(t *testing.T) {
	s := Entity("hr", "user",
		F("name", String("John")),
		F("pass", Password()),
	).Require("name", "pass")
	leaky := &Domain{Name: "hr", Resources: []*Resource{NewResource(s, CRUD)}}

	report := Lint(buildDoc(t, Options{}, leaky), []*Domain{leaky}, Options{}, nil)
	findings := report.ByRule(RuleSensitive)
	require.Len(t, findings, 1)
	assert.Equal(t, "/hr/user/{uuid}", findings[0].Path)

	r := NewResource(s, CRUD)
	r.UpdateResponse = s.Without("pass")
	safe := &Domain{Name: "hr", Resources: []*Resource{r}}
	report = Lint(buildDoc(t, Options{}, safe), []*Domain{safe}, Options{}, nil)
	assert.Empty(t, report.ByRule(RuleSensitive))
}

func TestLint_MultipartBinary(t *testing.T) {
	d := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	doc := buildDoc(t, Options{}, d)
	// a hand-edited body that claims multipart without a file field
	doc.Paths["/store/group"]["post"].RequestBody.Content = map[string]MediaType{
		ContentMultipart: {Schema: Ref("store.group")},
	}

	report := Lint(doc, []*Domain{d}, Options{}, nil)
	assert.Len(t, report.ByRule(RuleMultipart), 1)
}

func TestLint_ResponseCodes(t *testing.T) {
	d := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	doc := buildDoc(t, Options{}, d)
	delete(doc.Paths["/store/group/{uuid}"]["get"].Responses, "404")

	report := Lint(doc, []*Domain{d}, Options{}, nil)
	findings := report.ByRule(RuleResponseCodes)
	require.Len(t, findings, 1)
	assert.Equal(t, LevelWarning, findings[0].Level)
	assert.Contains(t, findings[0].Message, "404")
}

func TestLint_UUIDParam(t *testing.T) {
	d := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	doc := buildDoc(t, Options{}, d)
	doc.Paths["/store/group/{uuid}"]["delete"].Parameters = nil

	report := Lint(doc, []*Domain{d}, Options{}, nil)
	assert.Len(t, report.ByRule(RuleUUIDParam), 1)
}

func TestLint_Disjoint(t *testing.T) {
	a := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	b := &Domain{Name: "store", Resources: []*Resource{groupResource()}}
	doc := buildDoc(t, Options{}, a)

	report := Lint(doc, []*Domain{a, b}, Options{}, nil)
	assert.Len(t, report.ByRule(RuleDisjoint), 2)
	// errors sort ahead of warnings
	assert.Equal(t, LevelError, report.Findings[0].Level)
}
