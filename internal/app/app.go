// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cdfilter-core/domain"
	"cdfilter-core/filter"
	"cdfilter-core/registry"
	"cdfilter/internal/cdsearch"
	"cdfilter/internal/config"
	"cdfilter/internal/domains"
	"cdfilter/internal/logging"
	"cdfilter/internal/output"
	"cdfilter/internal/version"
)

type options struct {
	Results    []string
	Mode       string
	DomainFile string
	ConfigFile string
	By         string
	Coverage   float64
	Tolerance  float64
	Threads    int
	Output     string
	NoHeader   bool
	Quiet      bool
}

// usageError marks failures that should exit with the flag-error code.
type usageError struct{ error }

// NewCommand builds the root command. Report output goes to stdout, logs
// and errors to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var opt options
	cmd := &cobra.Command{
		Use:   "cdfilter",
		Short: "Reconcile overlapping conserved-domain hits into clean annotation tracks",
		Long: `cdfilter groups overlapping conserved-domain search hits per query,
keeps one representative hit per overlap group, merges fragmented calls
that are really one split domain, and renders the result as TSV, JSON,
GFF3 or domain-architecture strings.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opt)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	fl := cmd.Flags()
	fl.StringSliceVarP(&opt.Results, "results", "r", nil, "CD-Search results file(s), '-' for stdin (repeatable)")
	fl.StringVar(&opt.Mode, "mode", cdsearch.ModeRemote, "search mode: remote | local")
	fl.StringVar(&opt.DomainFile, "domains", "", "domain metadata table (JSON or YAML); built-in table if omitted")
	fl.StringVar(&opt.ConfigFile, "config", "", "TOML run configuration")
	fl.StringVar(&opt.By, "by", "", "representative metric: evalue | bitscore | length (default evalue)")
	fl.Float64Var(&opt.Coverage, "coverage", 0, "fragment coverage threshold, fraction of canonical length (default 0.5)")
	fl.Float64Var(&opt.Tolerance, "tolerance", 0, "fragment span tolerance, fraction of canonical length (default 0.1)")
	fl.IntVar(&opt.Threads, "threads", 0, "worker threads for per-query filtering (0 = all CPUs)")
	fl.StringVarP(&opt.Output, "output", "o", "text", "output format: text | json | gff | arch")
	fl.BoolVar(&opt.NoHeader, "no-header", false, "suppress the TSV header line")
	fl.BoolVarP(&opt.Quiet, "quiet", "q", false, "log errors only")
	return cmd
}

func run(cmd *cobra.Command, opt options) error {
	if len(opt.Results) == 0 {
		return &usageError{errors.New("at least one --results file is required")}
	}
	if opt.Mode != cdsearch.ModeRemote && opt.Mode != cdsearch.ModeLocal {
		return &usageError{fmt.Errorf("invalid --mode %q (expected remote or local)", opt.Mode)}
	}
	if !output.Known(opt.Output) {
		return &usageError{fmt.Errorf("invalid --output %q (expected text, json, gff or arch)", opt.Output)}
	}

	logger := logging.New(cmd.ErrOrStderr(), opt.Quiet)

	// Precedence: flags > config file > defaults.
	cfg := config.Default()
	if opt.ConfigFile != "" {
		loaded, err := config.Load(opt.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("by") {
		cfg.Metric = opt.By
	}
	if cmd.Flags().Changed("coverage") {
		cfg.CoveragePct = opt.Coverage
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.TolerancePct = opt.Tolerance
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = opt.Threads
	}

	metric, err := filter.ParseMetric(cfg.Metric)
	if err != nil {
		return &usageError{err}
	}
	rules, err := config.CompileRules(cfg.Rules)
	if err != nil {
		return err
	}

	table := domains.Default()
	if opt.DomainFile != "" {
		if table, err = domains.Load(opt.DomainFile); err != nil {
			return err
		}
	}

	results := make(map[string][]domain.Hit)
	for _, path := range opt.Results {
		parsed, err := readResults(cmd.InOrStdin(), path, opt.Mode, table)
		if err != nil {
			return err
		}
		for q, hs := range parsed {
			results[q] = append(results[q], hs...)
		}
	}
	logger.Debug().Int("queries", len(results)).Msg("parsed search results")

	f, err := filter.New(table, filter.Options{
		Metric:       metric,
		CoveragePct:  cfg.CoveragePct,
		TolerancePct: cfg.TolerancePct,
		Rules:        rules,
		Threads:      cfg.Threads,
		Logger:       logger,
	})
	if err != nil {
		return &usageError{err}
	}
	filtered, err := f.All(results)
	if err != nil {
		return err
	}

	report := output.BuildReport(filtered)
	return output.Write(opt.Output, cmd.OutOrStdout(), report, !opt.NoHeader)
}

func readResults(stdin io.Reader, path, mode string, table registry.Table) (map[string][]domain.Hit, error) {
	if path == "-" {
		return cdsearch.Parse(stdin, mode, table)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer fh.Close()
	return cdsearch.Parse(fh, mode, table)
}

// Run executes the CLI and maps errors onto exit codes: 2 for usage errors,
// 1 for runtime failures.
func Run(argv []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(argv)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "cdfilter:", err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			return 2
		}
		return 1
	}
	return 0
}
