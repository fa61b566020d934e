// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"cdfilter/pkg/api"
)

const textHeader = "query\tdomain\ttype\tstart\tend\tlength\tevalue\tbitscore\taccession\tsuperfamily"

func init() { Register("text", writeText) }

// writeText prints one TSV line per surviving hit.
func writeText(w io.Writer, report []api.QueryAnnotationV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, textHeader); err != nil {
			return err
		}
	}
	for _, q := range report {
		for _, h := range q.Hits {
			_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%g\t%.2f\t%s\t%s\n",
				q.Query, h.Domain, h.Type,
				h.Start, h.End, h.Length,
				h.Evalue, h.Bitscore,
				h.Accession, h.Superfamily,
			)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
