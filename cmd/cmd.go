// Package cmd defines the command-line interface for perfgate.
package cmd

import (
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(baselineCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the baseline subcommands to the parent baseline command
	baselineCmd.AddCommand(baselineUpdateCmd)
	baselineCmd.AddCommand(baselineShowCmd)
	baselineCmd.AddCommand(baselineStatusCmd)
	baselineCmd.AddCommand(baselineClearCmd)
	baselineCmd.AddCommand(baselineMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("baseline", contract.DefaultBaselineFile, "Path to the baseline JSON file")
	rootCmd.PersistentFlags().String("backend", string(schema.JSONBackend), "Baseline backend: json or sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Float64P("threshold", "t", contract.DefaultThreshold, "Regression threshold as a ratio (1.2 = 20% slower)")
	rootCmd.PersistentFlags().Float64("percentile", contract.OutlierPercentile, "Percentile used for baseline comparison")
	rootCmd.PersistentFlags().Int("min-samples", contract.MinSamplesForBaseline, "Sample count below which a baseline entry is flagged as low-confidence")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print improvements and new tests, not just regressions")
	rootCmd.PersistentFlags().Bool("ci", false, "CI mode: exit non-zero when no timing data or baseline is found")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of budgetCmd to Viper
	// Budgets themselves come from the config file ("budgets" key), since
	// pflag has no map-of-float type. Only the directory is a flag.
	budgetCmd.Flags().String("budget-dir", contract.DefaultBudgetDir, "Directory containing Criterion benchmark output")
	if err := viper.BindPFlags(budgetCmd.Flags()); err != nil {
		contract.LogFatal("Error binding budget flags", err)
	}

	// Bind all flags of baselineMigrateCmd to Viper
	baselineMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(baselineMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding baseline migrate flags", err)
	}
}
