// Package contract defines the validated runtime configuration and the
// interfaces shared between the engine, the stores and the CLI.
package contract

import (
	"fmt"

	"github.com/perfgate/perfgate/schema"
)

// Default values for configuration.
const (
	// DefaultThreshold is the regression ratio threshold (1.20 = 20% slower).
	DefaultThreshold = 1.20

	// OutlierPercentile is the percentile used for comparison, chosen to
	// dampen single-run outliers while still reacting to sustained slowdowns.
	OutlierPercentile = 95.0

	// MinSamplesForBaseline is the sample count below which a baseline
	// entry is still saved but considered less reliable.
	MinSamplesForBaseline = 3

	// DefaultPrecision is the decimal precision for numeric display columns.
	DefaultPrecision = 1

	// DefaultLogDir is where timing logs are discovered.
	DefaultLogDir = "target/test-logs"

	// DefaultBaselineFile is the JSON baseline location.
	DefaultBaselineFile = ".baselines/test_performance_baseline.json"

	// DefaultBudgetDir is where benchmark estimate files are discovered.
	DefaultBudgetDir = "target/benchmarks"
)

// Config holds the final, validated runtime configuration. Thresholds
// and the comparison percentile live here rather than in package-level
// mutable state so tests can override them per instance.
type Config struct {
	LogDir       string
	BaselinePath string
	Backend      schema.StoreBackend
	DBConnect    string // Please use env var as this is plaintext

	Threshold  float64
	Percentile float64
	MinSamples int
	Platform   string // Computed once per run, scopes all comparisons

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	Verbose    bool
	CIMode     bool
	UseColors  bool

	BudgetDir string
	Budgets   map[string]float64 // Benchmark group name -> budget in nanoseconds
}

// Clone returns a shallow copy with its own budgets map, so callers
// can override per-request settings without racing the base config.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Budgets != nil {
		clone.Budgets = make(map[string]float64, len(c.Budgets))
		for k, v := range c.Budgets {
			clone.Budgets[k] = v
		}
	}
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env,
// config file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	LogDirStr string

	Baseline   string             `mapstructure:"baseline"`
	Backend    string             `mapstructure:"backend"`
	DBConnect  string             `mapstructure:"db-connect"`
	Threshold  float64            `mapstructure:"threshold"`
	Percentile float64            `mapstructure:"percentile"`
	MinSamples int                `mapstructure:"min-samples"`
	Output     string             `mapstructure:"output"`
	OutputFile string             `mapstructure:"output-file"`
	Precision  int                `mapstructure:"precision"`
	Width      int                `mapstructure:"width"`
	Verbose    bool               `mapstructure:"verbose"`
	CI         bool               `mapstructure:"ci"`
	Color      string             `mapstructure:"color"`
	BudgetDir  string             `mapstructure:"budget-dir"`
	Budgets    map[string]float64 `mapstructure:"budgets"`
}

// ProcessAndValidate turns raw input into a validated Config. It fails
// closed on anything that would make a comparison meaningless: a ratio
// threshold at or below 1.0, a percentile outside (0, 100], an unknown
// output mode or store backend.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.Threshold <= 1.0 {
		return fmt.Errorf("threshold must be greater than 1.0, got %.2f", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	if input.Percentile <= 0 || input.Percentile > 100 {
		return fmt.Errorf("percentile must be in (0, 100], got %.1f", input.Percentile)
	}
	cfg.Percentile = input.Percentile

	if input.MinSamples < 1 {
		return fmt.Errorf("min-samples must be at least 1, got %d", input.MinSamples)
	}
	cfg.MinSamples = input.MinSamples

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode: %s. Must be text, csv, json, or parquet", input.Output)
	}
	cfg.Output = output

	backend := schema.StoreBackend(input.Backend)
	if _, ok := schema.ValidStoreBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend: %s. Must be json, sqlite, mysql, or postgresql", input.Backend)
	}
	cfg.Backend = backend
	cfg.DBConnect = input.DBConnect

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.LogDir = input.LogDirStr
	if cfg.LogDir == "" {
		cfg.LogDir = DefaultLogDir
	}
	cfg.BaselinePath = input.Baseline
	if cfg.BaselinePath == "" {
		cfg.BaselinePath = DefaultBaselineFile
	}
	cfg.BudgetDir = input.BudgetDir
	if cfg.BudgetDir == "" {
		cfg.BudgetDir = DefaultBudgetDir
	}
	cfg.Budgets = input.Budgets

	cfg.OutputFile = input.OutputFile
	cfg.Precision = input.Precision
	cfg.Width = input.Width
	cfg.Verbose = input.Verbose
	cfg.CIMode = input.CI

	cfg.Platform = DetectPlatform()

	return nil
}
