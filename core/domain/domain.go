// core/domain/domain.go
package domain

import "fmt"

// Hit is a single conserved-domain match on a query sequence.
//
// Start and End are fixed at creation, with one exception: the fragment
// merge scan may extend End when collapsing a fragmented run. Type may be
// reassigned by an override rule. Key is never rewritten, so registry
// lookups stay bound to the hit that produced the match.
type Hit struct {
	Key         string // registry key, e.g. "PksD"
	Type        string // functional category, e.g. "KS"
	Start       int
	End         int
	Evalue      float64
	Bitscore    float64
	PSSM        string
	Partial     string
	Accession   string
	Superfamily string
}

// Length is the span covered by the hit.
func (h Hit) Length() int { return h.End - h.Start }

// String renders like "PksD [KS] 9-1134".
func (h Hit) String() string {
	return fmt.Sprintf("%s [%s] %d-%d", h.Key, h.Type, h.Start, h.End)
}
