// core/registry/registry.go
package registry

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a hit references a key absent from the table.
var ErrNotFound = errors.New("domain key not found")

// Entry holds the metadata for one conserved-domain class.
type Entry struct {
	Type     string  // functional category assigned to hits of this key
	Length   int     // canonical PSSM length
	Bitscore float64 // bitscore normalization threshold
}

// Lookup resolves a domain key to its metadata. Implementations must be safe
// for concurrent readers; the filter core never writes through this interface.
type Lookup interface {
	Entry(key string) (Entry, error)
}

// Table is a map-backed Lookup. Build it once per run and treat it as
// immutable afterwards.
type Table map[string]Entry

func (t Table) Entry(key string) (Entry, error) {
	e, ok := t[key]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return e, nil
}

// Has reports whether key is present without constructing an error.
func (t Table) Has(key string) bool {
	_, ok := t[key]
	return ok
}
