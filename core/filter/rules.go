// core/filter/rules.go
package filter

import "cdfilter-core/domain"

// Rule retypes a group representative when its predicate fires. Rules are
// evaluated in declaration order against the selected hit and the remaining
// group members; the first match wins.
type Rule struct {
	Name    string
	SetType string
	Matches func(best domain.Hit, rest []domain.Hit) bool
}

// applyRules returns best with its Type reassigned by the first matching
// rule, or unchanged when none fire.
func applyRules(best domain.Hit, rest []domain.Hit, rules []Rule) domain.Hit {
	for _, r := range rules {
		if r.Matches != nil && r.Matches(best, rest) {
			best.Type = r.SetType
			return best
		}
	}
	return best
}

// TypePairRule builds the recurring rule form: the representative has type
// bestType and another hit of type otherType co-occurs in the group, so the
// representative is retyped to setType (e.g. a condensation hit flanked by
// an epimerization-specific hit). maxEvalue gates the co-occurring hit when
// greater than zero.
func TypePairRule(name, bestType, otherType, setType string, maxEvalue float64) Rule {
	return Rule{
		Name:    name,
		SetType: setType,
		Matches: func(best domain.Hit, rest []domain.Hit) bool {
			if best.Type != bestType {
				return false
			}
			for _, h := range rest {
				if h.Type != otherType {
					continue
				}
				if maxEvalue > 0 && h.Evalue > maxEvalue {
					continue
				}
				return true
			}
			return false
		},
	}
}
