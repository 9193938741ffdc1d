package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownDomain is returned when a domain has no paths in the catalog
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrUnknownResource is returned when a resource id is not in the catalog
	ErrUnknownResource = errors.New("unknown resource")

	// ErrUnknownPath is returned when a URL template is not in the catalog
	ErrUnknownPath = errors.New("unknown path")

	// ErrInvalidDescriptor is returned when a resource descriptor fails validation
	ErrInvalidDescriptor = errors.New("invalid resource descriptor")
)

// DuplicateError reports a key defined by two sources. The merged catalog
// would otherwise silently keep only one of them.
type DuplicateError struct {
	Kind   string // "path" or "schema"
	Key    string
	First  string
	Second string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s %q defined by %s and %s", e.Kind, e.Key, e.First, e.Second)
}

// IsDuplicate reports whether err is a DuplicateError
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup)
}
