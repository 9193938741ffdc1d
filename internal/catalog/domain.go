package catalog

import "fmt"

// Options control how the catalog is rendered
type Options struct {
	// PreserveLegacyShapes keeps the historical nested POST responses on
	// domains that shipped with them.
	PreserveLegacyShapes bool
}

// DefaultOptions preserves the contract existing clients were generated against
func DefaultOptions() Options {
	return Options{PreserveLegacyShapes: true}
}

// Domain is one business area of the catalog (store, hr, delivery, work)
type Domain struct {
	Name        string
	Description string

	// LegacyCreate marks domains whose POST blocks were published with the
	// nested responses wrapper.
	LegacyCreate bool

	Resources []*Resource
}

// Fragments generates the per-resource path fragments
func (d *Domain) Fragments(opts Options) ([]Fragment, error) {
	gen := GenerateOptions{LegacyCreate: d.LegacyCreate && opts.PreserveLegacyShapes}
	fragments := make([]Fragment, 0, len(d.Resources))
	for _, r := range d.Resources {
		if r.Domain != d.Name {
			return nil, fmt.Errorf("%w: %s listed in domain %s", ErrInvalidDescriptor, r.ID(), d.Name)
		}
		f, err := r.Generate(gen)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

// Paths merges the resource fragments into the domain aggregate
func (d *Domain) Paths(opts Options) (Paths, error) {
	b := NewBuilder()
	if err := d.AddTo(b, opts); err != nil {
		return nil, err
	}
	return b.Paths(), nil
}

// Schemas returns the component schemas of the domain keyed by Schema.Key
func (d *Domain) Schemas() (map[string]*Property, error) {
	b := NewBuilder()
	for _, r := range d.Resources {
		if err := b.AddSchema(r.ID(), r.Schema.Key(), r.Schema.Object()); err != nil {
			return nil, err
		}
	}
	return b.Schemas(), nil
}

// AddTo inserts the domain's paths and schemas into b
func (d *Domain) AddTo(b *Builder, opts Options) error {
	fragments, err := d.Fragments(opts)
	if err != nil {
		return err
	}
	for _, f := range fragments {
		if err := b.AddFragment(f); err != nil {
			return fmt.Errorf("domain %s: %w", d.Name, err)
		}
	}
	for _, r := range d.Resources {
		if err := b.AddSchema(r.ID(), r.Schema.Key(), r.Schema.Object()); err != nil {
			return fmt.Errorf("domain %s: %w", d.Name, err)
		}
	}
	return nil
}

// Resource returns the named resource of the domain
func (d *Domain) Resource(name string) (*Resource, bool) {
	for _, r := range d.Resources {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// Tags returns one documentation tag per resource
func (d *Domain) Tags() []Tag {
	tags := make([]Tag, 0, len(d.Resources))
	for _, r := range d.Resources {
		tags = append(tags, Tag{Name: r.Tag(), Description: r.DisplayName() + " (" + d.Description + ")"})
	}
	return tags
}
