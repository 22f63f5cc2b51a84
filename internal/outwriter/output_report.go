package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// WriteReport outputs the regression report, dispatching based on the
// configured output format.
func WriteReport(report *schema.RegressionReport, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		switch cfg.Output {
		case schema.JSONOut:
			doc := schema.BuildReportDocument(report, contract.TimestampUTC(), cfg.Platform)
			if err := writeJSON(w, doc); err != nil {
				return fmt.Errorf("error writing JSON output: %w", err)
			}
		case schema.CSVOut:
			if err := writeCSVReport(w, report, cfg); err != nil {
				return fmt.Errorf("error writing CSV output: %w", err)
			}
		case schema.ParquetOut:
			if err := writeParquetReport(w, report); err != nil {
				return fmt.Errorf("error writing Parquet output: %w", err)
			}
		default:
			// Default to human-readable text
			return writeTextReport(w, report, cfg, duration)
		}
		return nil
	}, "Report written")
}

// writeTextReport prints the report in a concise format suitable for CI logs.
func writeTextReport(w io.Writer, report *schema.RegressionReport, cfg *contract.Config, duration time.Duration) error {
	fmt.Fprintln(w, "Test Performance Regression Report")
	fmt.Fprintf(w, "  Platform:  %s\n", cfg.Platform)
	fmt.Fprintf(w, "  Threshold: %.2fx\n", cfg.Threshold)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Analyzed %d test(s) in %v\n", report.TotalTests, duration)
	fmt.Fprintf(w, "  Passed: %d\n", report.Passed)
	fmt.Fprintf(w, "  Failed: %d\n", report.Failed)
	fmt.Fprintf(w, "  New (no baseline): %d\n", len(report.NewTests))
	fmt.Fprintln(w)

	if len(report.Regressions) > 0 {
		fmt.Fprintln(w, "REGRESSIONS DETECTED:")
		if err := writeRegressionTable(w, report.Regressions, cfg); err != nil {
			return err
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "No regressions detected.")
		fmt.Fprintln(w)
	}

	if cfg.Verbose && len(report.Improvements) > 0 {
		fmt.Fprintln(w, "IMPROVEMENTS:")
		if err := writeImprovementTable(w, report.Improvements, cfg); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	if cfg.Verbose && len(report.NewTests) > 0 {
		fmt.Fprintln(w, "NEW TESTS (no baseline):")
		if err := writeNewTestTable(w, report.NewTests, cfg); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return nil
}

// writeRegressionTable renders regressions, worst first.
func writeRegressionTable(w io.Writer, regressions []schema.Regression, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Status", "Test", "Baseline p95", "Current p95", "Ratio", "Change"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range regressions {
		data = append(data, []string{
			statusLabel(FailLabel, cfg.UseColors),
			contract.TruncateName(r.TestName, nameWidth),
			fmt.Sprintf("%.*fms", cfg.Precision, r.BaselineP95MS),
			fmt.Sprintf("%.*fms", cfg.Precision, r.CurrentP95MS),
			fmt.Sprintf("%.2fx", r.Ratio),
			fmt.Sprintf("+%.1f%%", r.RegressionPct),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeImprovementTable renders improvements, best first.
func writeImprovementTable(w io.Writer, improvements []schema.Improvement, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Status", "Test", "Baseline p95", "Current p95", "Ratio", "Change"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, imp := range improvements {
		data = append(data, []string{
			statusLabel(OKLabel, cfg.UseColors),
			contract.TruncateName(imp.TestName, nameWidth),
			fmt.Sprintf("%.*fms", cfg.Precision, imp.BaselineP95MS),
			fmt.Sprintf("%.*fms", cfg.Precision, imp.CurrentP95MS),
			fmt.Sprintf("%.2fx", imp.Ratio),
			fmt.Sprintf("-%.1f%%", imp.ImprovementPct),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeNewTestTable renders tests that had nothing to compare against.
func writeNewTestTable(w io.Writer, newTests []schema.NewTest, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Status", "Test", "Current p95", "Samples", "Reason"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, nt := range newTests {
		data = append(data, []string{
			statusLabel(NewLabel, cfg.UseColors),
			contract.TruncateName(nt.TestName, nameWidth),
			fmt.Sprintf("%.*fms", cfg.Precision, nt.CurrentP95MS),
			fmt.Sprintf("%d", nt.Samples),
			nt.Reason,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
