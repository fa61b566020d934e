// internal/domains/domains.go
package domains

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cdfilter-core/registry"
)

type fileEntry struct {
	Type     string  `json:"type" yaml:"type"`
	Length   int     `json:"length" yaml:"length"`
	Bitscore float64 `json:"bitscore" yaml:"bitscore"`
}

// Load reads a domain metadata table keyed by domain name. JSON is the
// historical wire format; .yaml/.yml files are accepted with the same shape.
func Load(path string) (registry.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load domain table: %w", err)
	}

	var entries map[string]fileEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parse domain table %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parse domain table %s: %w", path, err)
		}
	}
	return build(entries)
}

func build(entries map[string]fileEntry) (registry.Table, error) {
	tbl := make(registry.Table, len(entries))
	for key, e := range entries {
		if e.Type == "" {
			return nil, fmt.Errorf("domain %q: missing type", key)
		}
		if e.Length <= 0 {
			return nil, fmt.Errorf("domain %q: length must be > 0", key)
		}
		if e.Bitscore <= 0 {
			return nil, fmt.Errorf("domain %q: bitscore threshold must be > 0", key)
		}
		tbl[key] = registry.Entry{Type: e.Type, Length: e.Length, Bitscore: e.Bitscore}
	}
	return tbl, nil
}

// Default is the built-in table covering the common PKS/NRPS domain
// classes, used for runs without an explicit --domains file.
func Default() registry.Table {
	return registry.Table{
		"PksD":            {Type: "KS", Length: 1102, Bitscore: 450.1},
		"PKS_KS":          {Type: "KS", Length: 421, Bitscore: 241.1},
		"PKS_AT":          {Type: "AT", Length: 298, Bitscore: 180.5},
		"PKS_DH":          {Type: "DH", Length: 167, Bitscore: 110.3},
		"PKS_ER":          {Type: "ER", Length: 287, Bitscore: 140.2},
		"PKS_KR":          {Type: "KR", Length: 182, Bitscore: 120.0},
		"PP-binding":      {Type: "ACP", Length: 67, Bitscore: 38.7},
		"Thioesterase":    {Type: "TE", Length: 224, Bitscore: 95.4},
		"Condensation":    {Type: "C", Length: 455, Bitscore: 190.8},
		"AMP-binding":     {Type: "A", Length: 444, Bitscore: 250.6},
		"NRPS-para261":    {Type: "E", Length: 261, Bitscore: 85.2},
		"Methyltransf_12": {Type: "MT", Length: 102, Bitscore: 60.1},
	}
}
