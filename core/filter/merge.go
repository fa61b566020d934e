// core/filter/merge.go
package filter

import (
	"fmt"

	"cdfilter-core/domain"
	"cdfilter-core/registry"
)

// IsFragmented reports whether two adjacent same-type hits look like one
// domain reported as two truncated pieces: both individually shorter than
// the coverage threshold, combined span within tolerance of the canonical
// PSSM length, and summed lengths above the threshold. Thresholds are
// fractions of the canonical length of a's domain class.
func IsFragmented(a, b domain.Hit, reg registry.Lookup, coveragePct, tolerancePct float64) (bool, error) {
	if a.Type != b.Type {
		return false, fmt.Errorf("fragment test requires hits of the same type, got %q and %q", a.Type, b.Type)
	}
	e, err := reg.Entry(a.Key)
	if err != nil {
		return false, err
	}
	canonical := float64(e.Length)
	coverage := canonical * coveragePct
	tolerance := canonical * tolerancePct

	span := float64(b.End - a.Start)
	la, lb := float64(a.Length()), float64(b.Length())
	return la < coverage &&
		lb < coverage &&
		canonical-tolerance <= span && span <= canonical+tolerance &&
		la+lb > coverage, nil
}

// MergeFragments collapses runs of fragmented same-type hits into single
// extended-span hits. hits must be one-per-overlap-group and sorted by
// Start. After a merge the extended hit is re-tested against its new
// neighbor before the scan advances, so runs of three or more fragments
// collapse transitively. Merging its own output again is a no-op.
func MergeFragments(hits []domain.Hit, reg registry.Lookup, coveragePct, tolerancePct float64) ([]domain.Hit, error) {
	out := make([]domain.Hit, len(hits))
	copy(out, hits)

	i := 1
	for i < len(out) {
		prev, curr := out[i-1], out[i]
		if prev.Type == curr.Type {
			frag, err := IsFragmented(prev, curr, reg, coveragePct, tolerancePct)
			if err != nil {
				return nil, err
			}
			if frag {
				out[i-1].End = curr.End
				out = append(out[:i], out[i+1:]...)
				continue
			}
		}
		i++
	}
	return out, nil
}
