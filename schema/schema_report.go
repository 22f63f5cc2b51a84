package schema

// Regression is the verdict for a test whose current p95 exceeded the
// baseline p95 by more than the configured threshold ratio.
type Regression struct {
	TestName      string  `json:"test_name"`
	BaselineP95MS float64 `json:"baseline_p95_ms"`
	CurrentP95MS  float64 `json:"current_p95_ms"`
	Ratio         float64 `json:"ratio"`
	Threshold     float64 `json:"threshold"`
	RegressionPct float64 `json:"regression_pct"`
}

// Improvement is the verdict for a test whose current p95 dropped below
// baseline p95 by more than the inverse threshold ratio.
type Improvement struct {
	TestName       string  `json:"test_name"`
	BaselineP95MS  float64 `json:"baseline_p95_ms"`
	CurrentP95MS   float64 `json:"current_p95_ms"`
	Ratio          float64 `json:"ratio"`
	ImprovementPct float64 `json:"improvement_pct"`
}

// NewTest is the verdict for a test that could not be compared: no
// baseline entry, a degenerate baseline p95, or a platform mismatch.
// New tests never affect the passed/failed counters.
type NewTest struct {
	TestName      string  `json:"test_name"`
	CurrentP95MS  float64 `json:"current_p95_ms"`
	CurrentMeanMS float64 `json:"current_mean_ms,omitempty"`
	Samples       int     `json:"samples,omitempty"`
	Reason        string  `json:"reason,omitempty"`
}

// RegressionReport is the sole output of the classifier. Stable tests
// are counted in Passed but not listed individually, which keeps the
// report focused on actionable items.
type RegressionReport struct {
	Regressions  []Regression  `json:"regressions"`
	Improvements []Improvement `json:"improvements"`
	NewTests     []NewTest     `json:"new_tests"`
	TotalTests   int           `json:"total_tests"`
	Passed       int           `json:"passed"`
	Failed       int           `json:"failed"`
}

// ReportSummary is the summary block of the serialized report document.
type ReportSummary struct {
	TotalTests int `json:"total_tests"`
	Passed     int `json:"passed"`
	Failed     int `json:"failed"`
	NewTests   int `json:"new_tests"`
}

// ReportDocument is the JSON document handed to external consumers.
type ReportDocument struct {
	GeneratedAt  string        `json:"generated_at"`
	Platform     string        `json:"platform"`
	Summary      ReportSummary `json:"summary"`
	Regressions  []Regression  `json:"regressions"`
	Improvements []Improvement `json:"improvements"`
	NewTests     []NewTest     `json:"new_tests"`
}

// BuildReportDocument flattens a report into its serialized document shape.
func BuildReportDocument(report *RegressionReport, generatedAt, platform string) ReportDocument {
	return ReportDocument{
		GeneratedAt: generatedAt,
		Platform:    platform,
		Summary: ReportSummary{
			TotalTests: report.TotalTests,
			Passed:     report.Passed,
			Failed:     report.Failed,
			NewTests:   len(report.NewTests),
		},
		Regressions:  report.Regressions,
		Improvements: report.Improvements,
		NewTests:     report.NewTests,
	}
}
