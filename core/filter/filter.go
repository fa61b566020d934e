// core/filter/filter.go
package filter

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog"

	"cdfilter-core/domain"
	"cdfilter-core/registry"
)

// Options controls one filtering run.
type Options struct {
	Metric       Metric
	CoveragePct  float64 // truncation threshold as a fraction of canonical length, (0,1]
	TolerancePct float64 // combined-span tolerance as a fraction of canonical length, >= 0
	Rules        []Rule
	Threads      int            // workers for All; 0 = all CPUs
	Logger       zerolog.Logger // zero value discards all events
}

// DefaultOptions mirrors the historical defaults.
func DefaultOptions() Options {
	return Options{
		Metric:       MetricEvalue,
		CoveragePct:  0.5,
		TolerancePct: 0.1,
		Logger:       zerolog.Nop(),
	}
}

// Filter applies group → representative → merge over per-query hit lists.
type Filter struct {
	reg  registry.Lookup
	opts Options
}

// New validates opts and binds them to a registry lookup.
func New(reg registry.Lookup, opts Options) (*Filter, error) {
	if opts.CoveragePct <= 0 || opts.CoveragePct > 1 {
		return nil, fmt.Errorf("coverage must be in (0,1], got %v", opts.CoveragePct)
	}
	if opts.TolerancePct < 0 {
		return nil, fmt.Errorf("tolerance must be >= 0, got %v", opts.TolerancePct)
	}
	switch opts.Metric {
	case MetricEvalue, MetricBitscore, MetricLength:
	default:
		return nil, fmt.Errorf("invalid metric %v", opts.Metric)
	}
	return &Filter{reg: reg, opts: opts}, nil
}

// Query filters one query's hits: overlapping hits are grouped, each group
// is reduced to its representative, and fragmented runs are merged. The
// result is ordered by ascending Start. Never returns nil on success.
func (f *Filter) Query(hits []domain.Hit) ([]domain.Hit, error) {
	var reps []domain.Hit
	err := ForEachGroup(hits, func(g []domain.Hit) error {
		best, err := Representative(g, f.opts.Metric, f.reg, f.opts.Rules)
		if err != nil {
			return err
		}
		reps = append(reps, best)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return MergeFragments(reps, f.reg, f.opts.CoveragePct, f.opts.TolerancePct)
}

// All applies Query independently to every entry of results. Queries left
// with no surviving hits are logged at warn level and retained with an
// empty slice. Per-query work is fanned out across Threads workers; the
// output does not depend on the worker count.
func (f *Filter) All(results map[string][]domain.Hit) (map[string][]domain.Hit, error) {
	threads := f.opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if len(results) > 0 && threads > len(results) {
		threads = len(results)
	}
	if threads < 1 {
		threads = 1
	}

	type job struct {
		query string
		hits  []domain.Hit
	}
	type result struct {
		query string
		hits  []domain.Hit
		err   error
	}
	jobs := make(chan job, threads)
	out := make(chan result, threads)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				kept, err := f.Query(j.hits)
				out <- result{query: j.query, hits: kept, err: err}
			}
		}()
	}

	// Collector
	filtered := make(map[string][]domain.Hit, len(results))
	var firstErr error
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range out {
			if r.err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("filter %s: %w", r.query, r.err)
				}
				continue
			}
			if len(r.hits) == 0 {
				f.opts.Logger.Warn().Str("query", r.query).Msg("no domains remain after filtering")
				filtered[r.query] = []domain.Hit{}
				continue
			}
			f.opts.Logger.Debug().Str("query", r.query).Int("domains", len(r.hits)).Msg("filtered query")
			filtered[r.query] = r.hits
		}
	}()

	for q, hs := range results {
		jobs <- job{query: q, hits: hs}
	}
	close(jobs)
	wg.Wait()
	close(out)
	cwg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return filtered, nil
}
