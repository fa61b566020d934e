// core/filter/select.go
package filter

import (
	"errors"
	"fmt"

	"cdfilter-core/domain"
	"cdfilter-core/registry"
)

// Representative picks the single best hit of an overlap group under the
// metric, then applies override rules in order. Exact score ties resolve to
// the earliest hit in group order. All non-selected hits are discarded.
func Representative(group []domain.Hit, by Metric, reg registry.Lookup, rules []Rule) (domain.Hit, error) {
	if len(group) == 0 {
		return domain.Hit{}, errors.New("cannot select from an empty overlap group")
	}

	score := func(h domain.Hit) (float64, error) {
		switch by {
		case MetricEvalue:
			// Negated so that "higher is better" holds for every metric.
			return -h.Evalue, nil
		case MetricBitscore:
			e, err := reg.Entry(h.Key)
			if err != nil {
				return 0, err
			}
			return h.Bitscore / e.Bitscore, nil
		case MetricLength:
			return float64(h.Length()), nil
		}
		return 0, fmt.Errorf("invalid metric %v", by)
	}

	bestIdx := 0
	bestScore, err := score(group[0])
	if err != nil {
		return domain.Hit{}, err
	}
	for i := 1; i < len(group); i++ {
		s, err := score(group[i])
		if err != nil {
			return domain.Hit{}, err
		}
		if s > bestScore {
			bestScore, bestIdx = s, i
		}
	}

	rest := make([]domain.Hit, 0, len(group)-1)
	for i, h := range group {
		if i != bestIdx {
			rest = append(rest, h)
		}
	}
	return applyRules(group[bestIdx], rest, rules), nil
}
