package outwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// WriteBudgetReport prints budget check results for CI logs.
func WriteBudgetReport(w io.Writer, report schema.BudgetReport, cfg *contract.Config) error {
	if len(report.Passed) > 0 {
		fmt.Fprintln(w, "PASSED:")
		for _, p := range report.Passed {
			fmt.Fprintf(w, "  %s: %s\n", statusLabel(OKLabel, cfg.UseColors), formatBudgetResult(p))
		}
		fmt.Fprintln(w)
	}

	if len(report.Failed) > 0 {
		fmt.Fprintln(w, "FAILED:")
		for _, f := range report.Failed {
			fmt.Fprintf(w, "  %s: %s\n", statusLabel(FailLabel, cfg.UseColors), formatBudgetResult(f))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d passed, %d failed\n", len(report.Passed), len(report.Failed))
	return nil
}

// WriteBudgetSummary writes a plain summary file for CI reporting next
// to the benchmark results.
func WriteBudgetSummary(benchDir string, report schema.BudgetReport) error {
	summaryPath := filepath.Join(benchDir, "summary.txt")

	var sb strings.Builder
	sb.WriteString("Performance Budget Verification\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	if len(report.Passed) > 0 {
		sb.WriteString("PASSED:\n")
		for _, p := range report.Passed {
			sb.WriteString("  OK: " + formatBudgetResult(p) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(report.Failed) > 0 {
		sb.WriteString("FAILED:\n")
		for _, f := range report.Failed {
			sb.WriteString("  FAIL: " + formatBudgetResult(f) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nTotal: %d passed, %d failed\n", len(report.Passed), len(report.Failed)))

	if err := os.WriteFile(summaryPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write budget summary: %w", err)
	}
	return nil
}

// formatBudgetResult formats one budget comparison in microseconds.
func formatBudgetResult(r schema.BudgetResult) string {
	op := "<="
	if !r.Passed {
		op = ">"
	}
	return fmt.Sprintf("%s: %.2fµs %s %.2fµs budget", r.Group, r.MeanNS/1e3, op, r.BudgetNS/1e3)
}
