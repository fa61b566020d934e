// internal/cdsearch/parse.go
package cdsearch

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"cdfilter-core/domain"
	"cdfilter-core/registry"
)

// Search modes accepted by Parse.
const (
	ModeRemote = "remote" // CD-Search website "domain hits" table
	ModeLocal  = "local"  // rpsblast | rpsbproc output
)

// queryRe pulls the query identifier out of a CD-Search table row, e.g.
// "Q#1 - >AN6791.2<tab>specific<tab>...".
var queryRe = regexp.MustCompile(`^Q#\d+ - >?([^\t]+)`)

// Parse reads conserved-domain search results and returns hits grouped per
// query, in row order. Rows whose domain key is absent from reg are dropped
// here so the filter core only ever sees resolvable keys.
func Parse(r io.Reader, mode string, reg registry.Table) (map[string][]domain.Hit, error) {
	switch mode {
	case ModeRemote:
		return ParseTable(r, reg)
	case ModeLocal:
		return ParseRpsbproc(r, reg)
	}
	return nil, fmt.Errorf("invalid mode %q (expected %s or %s)", mode, ModeRemote, ModeLocal)
}

// ParseTable reads a CD-Search "domain hits" table (Data mode: Full).
func ParseTable(r io.Reader, reg registry.Table) (map[string][]domain.Hit, error) {
	results := make(map[string][]domain.Hit)
	sc := newScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "Q#") {
			continue
		}
		m := queryRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if hit, ok := hitFromRow(line, reg); ok {
			results[m[1]] = append(results[m[1]], hit)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cd-search table: %w", err)
	}
	return results, nil
}

// ParseRpsbproc reads rpsbproc output. Each query sits in a block anchored
// by a QUERY row; its hits sit between DOMAINS and ENDDOMAINS.
func ParseRpsbproc(r io.Reader, reg registry.Table) (map[string][]domain.Hit, error) {
	results := make(map[string][]domain.Hit)
	var query string
	inDomains := false

	sc := newScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "QUERY\t"):
			fields := strings.Split(line, "\t")
			if len(fields) >= 5 {
				query = fields[4]
			}
		case line == "DOMAINS":
			inDomains = true
		case line == "ENDDOMAINS":
			inDomains = false
		case line == "ENDQUERY":
			query = ""
		default:
			if !inDomains || query == "" {
				continue
			}
			if hit, ok := hitFromRow(line, reg); ok {
				results[query] = append(results[query], hit)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read rpsbproc output: %w", err)
	}
	return results, nil
}

// hitFromRow parses the trailing nine tab fields shared by both formats:
// pssm, start, end, evalue, bitscore, accession, domain, partial,
// superfamily. Malformed rows and unknown domain keys report !ok.
func hitFromRow(row string, reg registry.Table) (domain.Hit, bool) {
	fields := strings.Split(row, "\t")
	if len(fields) < 9 {
		return domain.Hit{}, false
	}
	f := fields[len(fields)-9:]

	key := f[6]
	entry, ok := reg[key]
	if !ok {
		return domain.Hit{}, false
	}
	start, err := strconv.Atoi(f[1])
	if err != nil {
		return domain.Hit{}, false
	}
	end, err := strconv.Atoi(f[2])
	if err != nil {
		return domain.Hit{}, false
	}
	evalue, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return domain.Hit{}, false
	}
	bitscore, err := strconv.ParseFloat(f[4], 64)
	if err != nil {
		return domain.Hit{}, false
	}
	return domain.Hit{
		Key:         key,
		Type:        entry.Type,
		Start:       start,
		End:         end,
		Evalue:      evalue,
		Bitscore:    bitscore,
		PSSM:        f[0],
		Accession:   f[5],
		Partial:     f[7],
		Superfamily: f[8],
	}, true
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return sc
}
