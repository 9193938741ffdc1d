// Package store documents the inventory and store management endpoints
package store

import (
	"business-catalog-api/internal/catalog"
)

// Name is the domain name and URL prefix
const Name = "store"

// Domain returns the store catalog. Its POST blocks were published with the
// nested responses wrapper.
func Domain() *catalog.Domain {
	return &catalog.Domain{
		Name:         Name,
		Description:  "Inventory and store management",
		LegacyCreate: true,
		Resources: []*catalog.Resource{
			group(),
			category(),
			brand(),
			size(),
			vendor(),
			model(),
			product(),
			branch(),
			warehouse(),
			room(),
			rack(),
			floor(),
			box(),
			stock(),
			purchase(),
			purchaseEntry(),
			purchaseReturn(),
			internalTransfer(),
		},
	}
}

// Paths returns the merged store paths (pathStore)
func Paths(opts catalog.Options) (catalog.Paths, error) {
	return Domain().Paths(opts)
}

// Schemas returns the store component schemas
func Schemas() (map[string]*catalog.Property, error) {
	return Domain().Schemas()
}
