// internal/output/arch.go
package output

import (
	"fmt"
	"io"

	"cdfilter/pkg/api"
)

func init() { Register("arch", writeArch) }

// writeArch prints one "query<TAB>KS-AT-KR" architecture line per query.
// Queries with no surviving domains print an empty architecture.
func writeArch(w io.Writer, report []api.QueryAnnotationV1, _ bool) error {
	for _, q := range report {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", q.Query, q.Architecture); err != nil {
			return err
		}
	}
	return nil
}
