// internal/cdsearch/parse_test.go
package cdsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cdfilter-core/registry"
)

func parseTable() registry.Table {
	return registry.Table{
		"PksD":   {Type: "KS", Length: 1102, Bitscore: 450.1},
		"PKS_AT": {Type: "AT", Length: 298, Bitscore: 180.5},
	}
}

const sampleTable = `#Batch CD-search tool	NIH/NLM/NCBI
#cdsid	QM3-qcbsearch-1
#datatype	hitsFull Results
#status	0

Q#1 - >AN6791.2	specific	225858	9	1134	0	696.51	COG3321	PksD	-	cl09938
Q#1 - >AN6791.2	specific	214836	1279	1585	2.1e-30	120.41	smart00827	PKS_AT	-	cl08282
Q#1 - >AN6791.2	specific	100001	10	100	1e-5	50.0	pfam00001	Mystery	-	cl00001
Q#2 - >AN1034.2	specific	225858	5	900	1e-100	400.10	COG3321	PksD	-	cl09938
`

func TestParseTable(t *testing.T) {
	results, err := ParseTable(strings.NewReader(sampleTable), parseTable())
	require.NoError(t, err)
	require.Len(t, results, 2)

	hits := results["AN6791.2"]
	require.Len(t, hits, 2, "unknown-key row must be dropped")

	first := hits[0]
	assert.Equal(t, "PksD", first.Key)
	assert.Equal(t, "KS", first.Type)
	assert.Equal(t, 9, first.Start)
	assert.Equal(t, 1134, first.End)
	assert.Equal(t, 0.0, first.Evalue)
	assert.Equal(t, 696.51, first.Bitscore)
	assert.Equal(t, "COG3321", first.Accession)
	assert.Equal(t, "cl09938", first.Superfamily)
	assert.Equal(t, "225858", first.PSSM)
	assert.Equal(t, "-", first.Partial)

	require.Len(t, results["AN1034.2"], 1)
}

const sampleRpsbproc = `#Post-RPSBLAST Processing Utility v0.1
DATA
SESSION	1	blastp	db/Cdd
QUERY	Query_1	Peptide	2157	AN6791.2
DOMAINS
1	Query_1	Specific	225858	9	1134	0	696.51	COG3321	PksD	-	cl09938
1	Query_1	Specific	100001	10	100	1e-5	50.0	pfam00001	Mystery	-	cl00001
ENDDOMAINS
ENDQUERY
QUERY	Query_2	Peptide	1800	AN1034.2
DOMAINS
2	Query_2	Specific	214836	40	330	3e-40	150.2	smart00827	PKS_AT	-	cl08282
ENDDOMAINS
ENDQUERY
SESSION	END	1
ENDDATA
`

func TestParseRpsbproc(t *testing.T) {
	results, err := ParseRpsbproc(strings.NewReader(sampleRpsbproc), parseTable())
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Len(t, results["AN6791.2"], 1, "unknown-key row must be dropped")
	assert.Equal(t, "PksD", results["AN6791.2"][0].Key)

	at := results["AN1034.2"][0]
	assert.Equal(t, "AT", at.Type)
	assert.Equal(t, 40, at.Start)
	assert.Equal(t, 330, at.End)
}

func TestParseModeDispatch(t *testing.T) {
	remote, err := Parse(strings.NewReader(sampleTable), ModeRemote, parseTable())
	require.NoError(t, err)
	assert.Len(t, remote, 2)

	local, err := Parse(strings.NewReader(sampleRpsbproc), ModeLocal, parseTable())
	require.NoError(t, err)
	assert.Len(t, local, 2)

	_, err = Parse(strings.NewReader(""), "web", parseTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestHitFromRowMalformed(t *testing.T) {
	rows := []string{
		"Q#1 - >X\ttoo\tfew\tfields",
		"Q#1 - >X\tspecific\t1\tnot-a-number\t100\t1e-5\t50\tacc\tPksD\t-\tcl1",
		"Q#1 - >X\tspecific\t1\t10\t100\tbad\t50\tacc\tPksD\t-\tcl1",
	}
	for _, row := range rows {
		_, ok := hitFromRow(row, parseTable())
		assert.False(t, ok, "row %q", row)
	}
}

func TestParseTableEmptyInput(t *testing.T) {
	results, err := ParseTable(strings.NewReader(""), parseTable())
	require.NoError(t, err)
	assert.Empty(t, results)
}
