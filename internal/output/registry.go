// internal/output/registry.go
package output

import (
	"fmt"
	"io"

	"cdfilter/pkg/api"
)

// WriteFunc renders a report to w. header only applies to tabular formats.
type WriteFunc func(w io.Writer, report []api.QueryAnnotationV1, header bool) error

// writers is the format → writer registry. Writer files register themselves
// in init() (text, json, gff, arch).
var writers = map[string]WriteFunc{}

// Register installs a writer for format (last registration wins).
func Register(format string, fn WriteFunc) { writers[format] = fn }

// Known reports whether a writer is registered for format.
func Known(format string) bool {
	_, ok := writers[format]
	return ok
}

// Write dispatches to the registered writer for format.
func Write(format string, w io.Writer, report []api.QueryAnnotationV1, header bool) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, report, header)
}
