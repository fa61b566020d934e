// core/filter/group.go
package filter

import (
	"sort"

	"cdfilter-core/domain"
)

// overlapSlack absorbs alignment boundary noise: a hit whose start falls
// within this many positions of the cluster border still counts as
// overlapping the open cluster.
const overlapSlack = 10

// ForEachGroup partitions hits into maximal runs of mutually overlapping
// hits and streams each run to visit, in ascending order of first start.
// The input slice is not modified. Returns the first error from visit.
func ForEachGroup(hits []domain.Hit, visit func([]domain.Hit) error) error {
	if len(hits) == 0 {
		return nil
	}
	sorted := make([]domain.Hit, len(hits))
	copy(sorted, hits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	group := []domain.Hit{sorted[0]}
	border := sorted[0].End
	for _, h := range sorted[1:] {
		if h.Start+overlapSlack <= border {
			group = append(group, h)
			if h.End > border {
				border = h.End
			}
			continue
		}
		if err := visit(group); err != nil {
			return err
		}
		group = []domain.Hit{h}
		border = h.End
	}
	return visit(group)
}

// GroupOverlapping collects ForEachGroup output into a slice of clusters.
func GroupOverlapping(hits []domain.Hit) [][]domain.Hit {
	var groups [][]domain.Hit
	_ = ForEachGroup(hits, func(g []domain.Hit) error {
		groups = append(groups, g)
		return nil
	})
	return groups
}
