package catalog

// Fragment is the set of paths contributed by one source, usually a resource
type Fragment struct {
	Source string
	Paths  Paths
}

// Builder merges fragments into one catalog. Unlike a blind map union it
// refuses to overwrite a key that another source already defined.
type Builder struct {
	paths       Paths
	schemas     map[string]*Property
	pathOwner   map[string]string
	schemaOwner map[string]string
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{
		paths:       Paths{},
		schemas:     map[string]*Property{},
		pathOwner:   map[string]string{},
		schemaOwner: map[string]string{},
	}
}

// AddPaths inserts every URL template of paths. Nothing is inserted when any
// template is already owned by another source.
func (b *Builder) AddPaths(source string, paths Paths) error {
	for _, key := range paths.Keys() {
		if owner, ok := b.pathOwner[key]; ok {
			return &DuplicateError{Kind: "path", Key: key, First: owner, Second: source}
		}
	}
	for key, item := range paths {
		b.paths[key] = item
		b.pathOwner[key] = source
	}
	return nil
}

// AddFragment inserts a fragment
func (b *Builder) AddFragment(f Fragment) error {
	return b.AddPaths(f.Source, f.Paths)
}

// AddSchema inserts a component schema
func (b *Builder) AddSchema(source, key string, schema *Property) error {
	if owner, ok := b.schemaOwner[key]; ok {
		return &DuplicateError{Kind: "schema", Key: key, First: owner, Second: source}
	}
	b.schemas[key] = schema
	b.schemaOwner[key] = source
	return nil
}

// Paths returns the merged paths
func (b *Builder) Paths() Paths {
	return b.paths
}

// Schemas returns the merged component schemas
func (b *Builder) Schemas() map[string]*Property {
	return b.schemas
}

// Owner returns the source that contributed a URL template
func (b *Builder) Owner(path string) (string, bool) {
	owner, ok := b.pathOwner[path]
	return owner, ok
}

// Overlaps returns every key defined by more than one fragment. An empty
// result means the fragments are pairwise disjoint.
func Overlaps(fragments []Fragment) []*DuplicateError {
	owner := map[string]string{}
	var dups []*DuplicateError
	for _, f := range fragments {
		for _, key := range f.Paths.Keys() {
			if first, ok := owner[key]; ok {
				dups = append(dups, &DuplicateError{Kind: "path", Key: key, First: first, Second: f.Source})
				continue
			}
			owner[key] = f.Source
		}
	}
	return dups
}
