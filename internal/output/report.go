// internal/output/report.go
package output

import (
	"sort"
	"strings"

	"cdfilter-core/domain"
	"cdfilter/pkg/api"
)

// BuildReport flattens filtered per-query hits into the stable wire schema:
// queries sorted lexicographically, hits in ascending start order, with the
// architecture string joined from the hit types.
func BuildReport(filtered map[string][]domain.Hit) []api.QueryAnnotationV1 {
	queries := make([]string, 0, len(filtered))
	for q := range filtered {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	report := make([]api.QueryAnnotationV1, 0, len(queries))
	for _, q := range queries {
		hits := make([]domain.Hit, len(filtered[q]))
		copy(hits, filtered[q])
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Start < hits[j].Start })

		qa := api.QueryAnnotationV1{Query: q, Hits: make([]api.HitV1, 0, len(hits))}
		types := make([]string, 0, len(hits))
		for _, h := range hits {
			qa.Hits = append(qa.Hits, toHitV1(q, h))
			types = append(types, h.Type)
		}
		qa.Architecture = strings.Join(types, "-")
		report = append(report, qa)
	}
	return report
}

func toHitV1(query string, h domain.Hit) api.HitV1 {
	return api.HitV1{
		Query:       query,
		Domain:      h.Key,
		Type:        h.Type,
		Start:       h.Start,
		End:         h.End,
		Length:      h.Length(),
		Evalue:      h.Evalue,
		Bitscore:    h.Bitscore,
		Accession:   h.Accession,
		Superfamily: h.Superfamily,
		Partial:     h.Partial,
	}
}
