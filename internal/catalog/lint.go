package catalog

import (
	"fmt"
	"sort"
)

// Finding levels
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// Lint rule names
const (
	RuleDisjoint      = "disjoint-fragments"
	RuleUUIDOnCreate  = "uuid-not-required-on-create"
	RuleUUIDParam     = "uuid-path-param"
	RuleMultipart     = "multipart-binary"
	RuleScopeField    = "scope-field"
	RuleExampleValid  = "example-valid"
	RuleSensitive     = "sensitive-field"
	RuleLegacyShape   = "legacy-shape"
	RuleResponseCodes = "response-codes"
)

// Finding is one lint result
type Finding struct {
	Level   string `json:"level"`
	Rule    string `json:"rule"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
}

// Report is the result of linting a catalog
type Report struct {
	Findings []Finding `json:"findings"`
}

// Errors counts error findings
func (r *Report) Errors() int {
	return r.count(LevelError)
}

// Warnings counts warning findings
func (r *Report) Warnings() int {
	return r.count(LevelWarning)
}

// OK reports whether the catalog has no errors
func (r *Report) OK() bool {
	return r.Errors() == 0
}

// ByRule returns the findings of one rule
func (r *Report) ByRule(rule string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Rule == rule {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) count(level string) int {
	n := 0
	for _, f := range r.Findings {
		if f.Level == level {
			n++
		}
	}
	return n
}

func (r *Report) add(level, rule, path, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Level: level, Rule: rule, Path: path, Message: fmt.Sprintf(format, args...)})
}

// canonical status codes of generated CRUD operations
var canonicalCodes = map[string][]string{
	"collection get":  {"200"},
	"collection post": {"200", "405"},
	"item get":        {"200", "400", "404"},
	"item put":        {"200", "400", "404", "405"},
	"item delete":     {"200", "400", "404"},
}

// Lint checks the internal consistency of a rendered document against the
// descriptors it was generated from.
func Lint(doc *Document, domains []*Domain, opts Options, v *Validator) *Report {
	report := &Report{}
	if v == nil {
		v = NewValidator()
	}

	var fragments []Fragment
	for _, d := range domains {
		fs, err := d.Fragments(opts)
		if err != nil {
			report.add(LevelError, RuleDisjoint, "", "domain %s: %v", d.Name, err)
			continue
		}
		fragments = append(fragments, fs...)
	}
	for _, dup := range Overlaps(fragments) {
		report.add(LevelError, RuleDisjoint, dup.Key, "%s", dup.Error())
	}

	for _, d := range domains {
		for _, r := range d.Resources {
			lintResource(report, doc, r, v)
		}
	}

	for _, path := range doc.Paths.Keys() {
		item := doc.Paths[path]
		for _, verb := range item.Verbs() {
			lintOperation(report, doc, path, verb, item[verb])
		}
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		a, b := report.Findings[i], report.Findings[j]
		if a.Level != b.Level {
			return a.Level == LevelError
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Path < b.Path
	})
	return report
}

func lintResource(report *Report, doc *Document, r *Resource, v *Validator) {
	if r.Has(VerbCreate) {
		for _, name := range r.Schema.Required {
			if name == "uuid" {
				report.add(LevelError, RuleUUIDOnCreate, r.CollectionPath(), "%s requires uuid on create", r.ID())
			}
		}
	}

	item := doc.Paths[r.ItemPath()]
	for verb, op := range item {
		p, ok := op.Param("uuid")
		if !ok || !p.Required || p.In != "path" {
			report.add(LevelError, RuleUUIDParam, r.ItemPath(), "%s %s does not require the uuid path parameter", verb, r.ItemPath())
		}
	}

	for i := range r.SubRoutes {
		sub := &r.SubRoutes[i]
		param, ok := sub.ScopeParam()
		if !ok {
			continue
		}
		scope := sub.Scope
		if scope == nil {
			scope = r.Schema
		}
		if !scope.Has(param) {
			report.add(LevelError, RuleScopeField, sub.Path, "%s is not a field of %s", param, scope.Name)
		}
	}

	if err := v.CheckValue(r.Schema, r.Schema.Example()); err != nil {
		report.add(LevelError, RuleExampleValid, r.CollectionPath(), "example of %s does not match its schema: %v", r.ID(), err)
	}
}

func lintOperation(report *Report, doc *Document, path, verb string, op *Operation) {
	if op.RequestBody != nil {
		if mt, ok := op.RequestBody.Content[ContentMultipart]; ok {
			if !hasBinary(doc, mt.Schema) {
				report.add(LevelError, RuleMultipart, path, "%s %s accepts multipart/form-data without a binary field", verb, path)
			}
		}
	}

	if verb == "put" {
		if s := resolve(doc, op.Responses["200"].Schema()); s != nil {
			for name, p := range s.Properties {
				if p.Format == "password" || name == "pass" || name == "password" {
					report.add(LevelError, RuleSensitive, path, "update response exposes %s", name)
				}
			}
		}
	}

	if op.LegacyNested {
		report.add(LevelWarning, RuleLegacyShape, path, "%s %s nests its responses under an extra responses key", verb, path)
	}

	kind := ""
	switch {
	case len(path) > len("/{uuid}") && path[len(path)-len("/{uuid}"):] == "/{uuid}":
		kind = "item " + verb
	case isCollection(doc, path):
		kind = "collection " + verb
	}
	for _, code := range canonicalCodes[kind] {
		if _, ok := op.Responses[code]; !ok {
			report.add(LevelWarning, RuleResponseCodes, path, "%s %s does not document %s", verb, path, code)
		}
	}
}

// isCollection reports whether path has a sibling {uuid} item path
func isCollection(doc *Document, path string) bool {
	_, ok := doc.Paths[path+"/{uuid}"]
	return ok
}

func resolve(doc *Document, p *Property) *Property {
	if p == nil {
		return nil
	}
	if key := p.RefKey(); key != "" {
		return doc.Components.Schemas[key]
	}
	return p
}

func hasBinary(doc *Document, p *Property) bool {
	s := resolve(doc, p)
	if s == nil {
		return false
	}
	for _, prop := range s.Properties {
		if prop.IsBinary() {
			return true
		}
	}
	return false
}
