// Package work documents the repair workflow: intake, orders, diagnosis and
// processing.
package work

import (
	"business-catalog-api/internal/catalog"
)

// Name is the domain name and URL prefix
const Name = "work"

// Domain returns the work catalog
func Domain() *catalog.Domain {
	return &catalog.Domain{
		Name:        Name,
		Description: "Repair work orders",
		Resources: []*catalog.Resource{
			info(),
			order(),
			problem(),
			accessory(),
			diagnosis(),
			section(),
			process(),
			zone(),
		},
	}
}

// Paths returns the merged work paths (pathWork)
func Paths(opts catalog.Options) (catalog.Paths, error) {
	return Domain().Paths(opts)
}

// Schemas returns the work component schemas
func Schemas() (map[string]*catalog.Property, error) {
	return Domain().Schemas()
}
