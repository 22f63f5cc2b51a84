package cmd

import (
	"os"

	"github.com/perfgate/perfgate/core"
	"github.com/perfgate/perfgate/internal/baselinestore"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/internal/outwriter"
	"github.com/spf13/cobra"
)

// budgetCmd focused on benchmark budget enforcement.
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Check Criterion benchmark estimates against time budgets (fails build on overruns)",
	Long: `Walk a Criterion benchmark output directory, read each group's mean
estimate and compare it against the configured budget in nanoseconds.

Budgets live under the "budgets" key of the config file, mapping a
benchmark group name (or prefix) to its budget. An exact name match wins;
otherwise the longest matching prefix applies. Groups without a budget
are skipped.

A summary.txt is written into the benchmark directory for CI artifacts.

Examples:
  # Check with budgets from .perfgate.yaml
  perfgate budget

  # Check a custom benchmark directory
  perfgate budget --budget-dir build/criterion`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		report, warnings, err := core.GetBudgetResults(cfg)
		if err != nil {
			contract.LogFatal("Budget check failed", err)
		}
		for _, w := range warnings {
			contract.LogWarn(w, nil)
		}

		if err := outwriter.WriteBudgetReport(os.Stdout, *report, cfg); err != nil {
			contract.LogFatal("Failed to write budget report", err)
		}
		if err := outwriter.WriteBudgetSummary(cfg.BudgetDir, *report); err != nil {
			contract.LogWarn("Failed to write budget summary", err)
		}

		if len(report.Failed) > 0 {
			baselinestore.CloseStore()
			os.Exit(exitRegressions)
		}
	},
}
