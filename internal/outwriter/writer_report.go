package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// writeCSVReport flattens all verdicts into CSV rows.
func writeCSVReport(w io.Writer, report *schema.RegressionReport, cfg *contract.Config) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	header := []string{
		"status",
		"test_name",
		"baseline_p95_ms",
		"current_p95_ms",
		"ratio",
		"change_pct",
		"samples",
		"reason",
	}
	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	fmtFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	for _, r := range report.Regressions {
		row := []string{
			FailLabel,
			r.TestName,
			fmtFloat(r.BaselineP95MS),
			fmtFloat(r.CurrentP95MS),
			fmtFloat(r.Ratio),
			fmtFloat(r.RegressionPct),
			"",
			"",
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	for _, imp := range report.Improvements {
		row := []string{
			OKLabel,
			imp.TestName,
			fmtFloat(imp.BaselineP95MS),
			fmtFloat(imp.CurrentP95MS),
			fmtFloat(imp.Ratio),
			fmtFloat(-imp.ImprovementPct),
			"",
			"",
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	for _, nt := range report.NewTests {
		row := []string{
			NewLabel,
			nt.TestName,
			"",
			fmtFloat(nt.CurrentP95MS),
			"",
			"",
			strconv.Itoa(nt.Samples),
			nt.Reason,
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ReportRow is the flattened verdict shape for Parquet export.
type ReportRow struct {
	// Status is FAIL, OK or NEW
	Status string `parquet:"status,snappy"`

	// TestName identifies the test this verdict belongs to
	TestName string `parquet:"test_name,snappy"`

	// BaselineP95MS is the stored comparison metric (nullable for new tests)
	BaselineP95MS *float64 `parquet:"baseline_p95_ms,optional,snappy"`

	// CurrentP95MS is this run's comparison metric
	CurrentP95MS float64 `parquet:"current_p95_ms,snappy"`

	// Ratio is current over baseline (nullable for new tests)
	Ratio *float64 `parquet:"ratio,optional,snappy"`

	// ChangePct is positive for regressions, negative for improvements (nullable)
	ChangePct *float64 `parquet:"change_pct,optional,snappy"`

	// Reason explains why a test could not be compared (nullable)
	Reason *string `parquet:"reason,optional,snappy"`
}

// writeParquetReport writes all verdicts as Parquet rows using struct
// schema inference from the ReportRow tags.
func writeParquetReport(w io.Writer, report *schema.RegressionReport) error {
	writer := parquet.NewGenericWriter[ReportRow](w)
	defer func() { _ = writer.Close() }()

	rows := make([]ReportRow, 0, len(report.Regressions)+len(report.Improvements)+len(report.NewTests))
	for _, r := range report.Regressions {
		baseline, ratio, change := r.BaselineP95MS, r.Ratio, r.RegressionPct
		rows = append(rows, ReportRow{
			Status:        FailLabel,
			TestName:      r.TestName,
			BaselineP95MS: &baseline,
			CurrentP95MS:  r.CurrentP95MS,
			Ratio:         &ratio,
			ChangePct:     &change,
		})
	}
	for _, imp := range report.Improvements {
		baseline, ratio := imp.BaselineP95MS, imp.Ratio
		change := -imp.ImprovementPct
		rows = append(rows, ReportRow{
			Status:        OKLabel,
			TestName:      imp.TestName,
			BaselineP95MS: &baseline,
			CurrentP95MS:  imp.CurrentP95MS,
			Ratio:         &ratio,
			ChangePct:     &change,
		})
	}
	for _, nt := range report.NewTests {
		row := ReportRow{
			Status:       NewLabel,
			TestName:     nt.TestName,
			CurrentP95MS: nt.CurrentP95MS,
		}
		if nt.Reason != "" {
			reason := nt.Reason
			row.Reason = &reason
		}
		rows = append(rows, row)
	}

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	return nil
}
