// internal/output/gff.go
package output

import (
	"fmt"
	"io"

	"cdfilter/pkg/api"
)

func init() { Register("gff", writeGFF) }

// writeGFF emits GFF3 protein_match features, one per surviving hit. Hit
// coordinates are half-open 0-based; GFF columns are closed 1-based, so
// start shifts by one. The score column carries the e-value.
func writeGFF(w io.Writer, report []api.QueryAnnotationV1, _ bool) error {
	if _, err := fmt.Fprintln(w, "##gff-version 3"); err != nil {
		return err
	}
	for _, q := range report {
		for _, h := range q.Hits {
			attrs := fmt.Sprintf("Name=%s;domain_type=%s", h.Domain, h.Type)
			if h.Accession != "" {
				attrs += ";accession=" + h.Accession
			}
			if h.Superfamily != "" {
				attrs += ";superfamily=" + h.Superfamily
			}
			_, err := fmt.Fprintf(w, "%s\tcdfilter\tprotein_match\t%d\t%d\t%g\t+\t.\t%s\n",
				q.Query, h.Start+1, h.End, h.Evalue, attrs)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
