// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"cdfilter/pkg/api"
)

func init() { Register("json", writeJSON) }

// writeJSON writes the whole report as one pretty-indented JSON array.
func writeJSON(w io.Writer, report []api.QueryAnnotationV1, _ bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
