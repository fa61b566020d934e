// core/filter/metric.go
package filter

import "fmt"

// Metric selects how the representative hit of an overlap group is scored.
type Metric int

const (
	// MetricEvalue keeps the hit with the smallest e-value.
	MetricEvalue Metric = iota
	// MetricBitscore keeps the hit with the highest bitscore relative to
	// its registry threshold.
	MetricBitscore
	// MetricLength keeps the longest hit.
	MetricLength
)

func (m Metric) String() string {
	switch m {
	case MetricEvalue:
		return "evalue"
	case MetricBitscore:
		return "bitscore"
	case MetricLength:
		return "length"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// ParseMetric maps a user-facing name onto a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "evalue":
		return MetricEvalue, nil
	case "bitscore":
		return MetricBitscore, nil
	case "length":
		return MetricLength, nil
	}
	return 0, fmt.Errorf("invalid metric %q (expected evalue, bitscore or length)", s)
}
