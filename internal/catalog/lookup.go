package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Route is one flattened (path, verb) row of the catalog
type Route struct {
	Path    string   `json:"path"`
	Method  string   `json:"method"`
	Tags    []string `json:"tags"`
	Summary string   `json:"summary"`
	Codes   []string `json:"codes"`
}

// Verbs returns the sorted verbs documented for a URL template
func (d *Document) Verbs(path string) ([]string, bool) {
	item, ok := d.Paths[path]
	if !ok {
		return nil, false
	}
	return item.Verbs(), true
}

// Operation returns the operation documented for (path, verb)
func (d *Document) Operation(path, verb string) (*Operation, error) {
	item, ok := d.Paths[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	op, ok := item[strings.ToLower(verb)]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownPath, strings.ToUpper(verb), path)
	}
	return op, nil
}

// Routes flattens the document into rows sorted by path then verb. An empty
// domain returns every route.
func (d *Document) Routes(domain string) []Route {
	prefix := ""
	if domain != "" {
		prefix = "/" + domain + "/"
	}
	var routes []Route
	for _, path := range d.Paths.Keys() {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		item := d.Paths[path]
		for _, verb := range item.Verbs() {
			op := item[verb]
			routes = append(routes, Route{
				Path:    path,
				Method:  strings.ToUpper(verb),
				Tags:    op.Tags,
				Summary: op.Summary,
				Codes:   op.Responses.Codes(),
			})
		}
	}
	return routes
}

// Domains returns the first path segment of every URL template
func (d *Document) Domains() []string {
	seen := map[string]bool{}
	for path := range d.Paths {
		parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 2)
		seen[parts[0]] = true
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Query evaluates a gjson path against rendered JSON
func Query(data []byte, path string) (gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("document is not valid JSON")
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return res, fmt.Errorf("%w: %s", ErrUnknownPath, path)
	}
	return res, nil
}

// OperationPath builds the gjson path of an operation in a rendered document
func OperationPath(path, verb string) string {
	return "paths." + escapeQuery(path) + "." + strings.ToLower(verb)
}

func escapeQuery(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
