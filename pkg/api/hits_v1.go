// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON schema for a filtered domain hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	Query       string  `json:"query"`
	Domain      string  `json:"domain"`
	Type        string  `json:"type"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Length      int     `json:"length"`
	Evalue      float64 `json:"evalue"`
	Bitscore    float64 `json:"bitscore"`
	Accession   string  `json:"accession,omitempty"`
	Superfamily string  `json:"superfamily,omitempty"`
	Partial     string  `json:"partial,omitempty"`
}

// QueryAnnotationV1 groups the surviving hits of one query together with
// its domain-architecture string (hit types joined with "-").
type QueryAnnotationV1 struct {
	Query        string  `json:"query"`
	Architecture string  `json:"architecture"`
	Hits         []HitV1 `json:"hits"`
}
