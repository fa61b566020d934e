// internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"cdfilter-core/filter"
)

// Config carries run settings loadable from a TOML file.
type Config struct {
	Metric       string
	CoveragePct  float64
	TolerancePct float64
	Threads      int
	Rules        []RuleSpec
}

// RuleSpec is the declarative form of a category override rule.
type RuleSpec struct {
	Name      string  `toml:"name"`
	BestType  string  `toml:"best_type"`
	OtherType string  `toml:"other_type"`
	SetType   string  `toml:"set_type"`
	MaxEvalue float64 `toml:"max_evalue"`
}

type fileConfig struct {
	Metric       string     `toml:"metric"`
	CoveragePct  float64    `toml:"coverage_pct"`
	TolerancePct float64    `toml:"tolerance_pct"`
	Threads      int        `toml:"threads"`
	Rules        []RuleSpec `toml:"rules"`
}

// Default mirrors the historical defaults, including the canonical
// condensation→epimerization override.
func Default() Config {
	return Config{
		Metric:       "evalue",
		CoveragePct:  0.5,
		TolerancePct: 0.1,
		Rules: []RuleSpec{
			{Name: "epimerization", BestType: "C", OtherType: "E", SetType: "E"},
		},
	}
}

// Load overlays the file at path onto Default(). Only keys the file defines
// override; everything else keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("metric") {
		cfg.Metric = strings.TrimSpace(raw.Metric)
	}
	if meta.IsDefined("coverage_pct") {
		cfg.CoveragePct = raw.CoveragePct
	}
	if meta.IsDefined("tolerance_pct") {
		cfg.TolerancePct = raw.TolerancePct
	}
	if meta.IsDefined("threads") {
		cfg.Threads = raw.Threads
	}
	if meta.IsDefined("rules") {
		cfg.Rules = raw.Rules
	}
	return cfg, nil
}

// CompileRules turns declarative specs into filter rules, preserving order.
func CompileRules(specs []RuleSpec) ([]filter.Rule, error) {
	rules := make([]filter.Rule, 0, len(specs))
	for _, s := range specs {
		if s.BestType == "" || s.OtherType == "" || s.SetType == "" {
			return nil, fmt.Errorf("rule %q: best_type, other_type and set_type are required", s.Name)
		}
		rules = append(rules, filter.TypePairRule(s.Name, s.BestType, s.OtherType, s.SetType, s.MaxEvalue))
	}
	return rules, nil
}
