package cmd

import (
	"os"
	"time"

	"github.com/perfgate/perfgate/core"
	"github.com/perfgate/perfgate/internal/baselinestore"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/internal/outwriter"
	"github.com/spf13/cobra"
)

// Exit codes for the check command. CI pipelines key off these.
const (
	exitOK          = 0
	exitRegressions = 1
	exitNoData      = 2
)

// checkCmd focused on CI/CD regression gating.
var checkCmd = &cobra.Command{
	Use:   "check [log-dir]",
	Short: "Compare current timing logs against the baseline (fails build on regressions)",
	Long: `Aggregate JSONL timing logs, compare each test's percentile against the
stored baseline and classify it as regressed, improved, stable or new.

Designed specifically for CI integration - fails with non-zero exit code when
any test is slower than the baseline by more than the threshold ratio.

Exit codes:
  0 - no regressions
  1 - at least one regression detected
  2 - no timing data or no baseline found (only with --ci)

Examples:
  # Check with defaults (target/test-logs, 1.2x threshold)
  perfgate check

  # Stricter gate against a custom log directory
  perfgate check build/test-logs --threshold 1.1

  # Fail the build when logs or baseline are missing
  perfgate check --ci`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()

		result, err := core.GetCheckResults(cfg, baselinestore.GetStore())
		if err != nil {
			contract.LogFatal("Regression check failed", err)
		}
		for _, w := range result.Warnings {
			contract.LogWarn(w, nil)
		}

		if err := outwriter.WriteReport(result.Report, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Failed to write report", err)
		}

		// os.Exit skips deferred cleanup, so close the store first.
		switch {
		case result.Report.Failed > 0:
			baselinestore.CloseStore()
			os.Exit(exitRegressions)
		case (result.NoTimings || result.NoBaseline) && cfg.CIMode:
			baselinestore.CloseStore()
			os.Exit(exitNoData)
		}
	},
}
