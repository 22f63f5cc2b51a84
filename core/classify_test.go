package core

import (
	"testing"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifyConfig() *contract.Config {
	return &contract.Config{
		Threshold:  1.20,
		Percentile: 95,
		Platform:   "linux-x64",
	}
}

func baselineEntry(p95 float64, platform string) schema.TestBaseline {
	return schema.TestBaseline{
		P95MS:       p95,
		MeanMS:      p95,
		SampleCount: 5,
		Platform:    platform,
	}
}

// TestClassifyVerdicts covers the four classification outcomes.
func TestClassifyVerdicts(t *testing.T) {
	cfg := classifyConfig()

	tests := []struct {
		name         string
		durations    []int64
		baseline     *schema.TestBaseline
		wantVerdict  string
		wantRatio    float64
		wantPct      float64
		wantReason   string
	}{
		{
			name:        "regressed above threshold",
			durations:   []int64{125},
			baseline:    ptr(baselineEntry(100, "linux-x64")),
			wantVerdict: "regressed",
			wantRatio:   1.25,
			wantPct:     25.0,
		},
		{
			name:        "stable within band",
			durations:   []int64{90},
			baseline:    ptr(baselineEntry(100, "linux-x64")),
			wantVerdict: "stable",
		},
		{
			name:        "improved below inverse threshold",
			durations:   []int64{80},
			baseline:    ptr(baselineEntry(100, "linux-x64")),
			wantVerdict: "improved",
			wantRatio:   0.8,
			wantPct:     20.0,
		},
		{
			name:        "new without baseline",
			durations:   []int64{100},
			baseline:    nil,
			wantVerdict: "new",
		},
		{
			name:        "platform mismatch is new",
			durations:   []int64{100},
			baseline:    ptr(baselineEntry(100, "darwin-arm64")),
			wantVerdict: "new",
			wantReason:  "platform mismatch (baseline: darwin-arm64, current: linux-x64)",
		},
		{
			name:        "zero baseline p95 is new",
			durations:   []int64{100},
			baseline:    ptr(baselineEntry(0, "linux-x64")),
			wantVerdict: "new",
			wantReason:  "no baseline p95",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregated := map[string][]int64{"case_flow": tt.durations}
			baselines := map[string]schema.TestBaseline{}
			if tt.baseline != nil {
				baselines["case_flow"] = *tt.baseline
			}

			report := Classify(aggregated, baselines, cfg)
			assert.Equal(t, 1, report.TotalTests)

			switch tt.wantVerdict {
			case "regressed":
				require.Len(t, report.Regressions, 1)
				assert.Equal(t, 1, report.Failed)
				assert.Equal(t, 0, report.Passed)
				r := report.Regressions[0]
				assert.Equal(t, "case_flow", r.TestName)
				assert.Equal(t, tt.wantRatio, r.Ratio)
				assert.Equal(t, tt.wantPct, r.RegressionPct)
				assert.Equal(t, cfg.Threshold, r.Threshold)
			case "improved":
				require.Len(t, report.Improvements, 1)
				assert.Equal(t, 0, report.Failed)
				assert.Equal(t, 1, report.Passed)
				i := report.Improvements[0]
				assert.Equal(t, tt.wantRatio, i.Ratio)
				assert.Equal(t, tt.wantPct, i.ImprovementPct)
			case "stable":
				assert.Empty(t, report.Regressions)
				assert.Empty(t, report.Improvements)
				assert.Empty(t, report.NewTests)
				assert.Equal(t, 1, report.Passed)
				assert.Equal(t, 0, report.Failed)
			case "new":
				require.Len(t, report.NewTests, 1)
				// New tests hit neither counter.
				assert.Equal(t, 0, report.Passed)
				assert.Equal(t, 0, report.Failed)
				assert.Equal(t, tt.wantReason, report.NewTests[0].Reason)
			}
		})
	}
}

// TestClassifyBandEdges tests that the threshold bands are exclusive.
func TestClassifyBandEdges(t *testing.T) {
	cfg := classifyConfig()
	baselines := map[string]schema.TestBaseline{
		"edge_flow": baselineEntry(100, "linux-x64"),
	}

	// Exactly at the threshold is stable, not regressed.
	report := Classify(map[string][]int64{"edge_flow": {120}}, baselines, cfg)
	assert.Empty(t, report.Regressions)
	assert.Equal(t, 1, report.Passed)

	// Just above regresses.
	report = Classify(map[string][]int64{"edge_flow": {121}}, baselines, cfg)
	assert.Len(t, report.Regressions, 1)

	// The improvement band is narrower than the regression band: a 17%
	// speedup at threshold 1.20 is still stable since 0.83 > 1/1.2.
	report = Classify(map[string][]int64{"edge_flow": {84}}, baselines, cfg)
	assert.Empty(t, report.Improvements)
	assert.Equal(t, 1, report.Passed)

	report = Classify(map[string][]int64{"edge_flow": {83}}, baselines, cfg)
	assert.Len(t, report.Improvements, 1)
}

// TestClassifyOrdering tests deterministic report ordering.
func TestClassifyOrdering(t *testing.T) {
	cfg := classifyConfig()
	baselines := map[string]schema.TestBaseline{
		"alpha_flow": baselineEntry(100, "linux-x64"),
		"beta_flow":  baselineEntry(100, "linux-x64"),
		"gamma_flow": baselineEntry(100, "linux-x64"),
	}
	aggregated := map[string][]int64{
		"alpha_flow": {150},
		"beta_flow":  {200},
		"gamma_flow": {150},
	}

	report := Classify(aggregated, baselines, cfg)
	require.Len(t, report.Regressions, 3)

	// Worst first; equal ratios keep name order.
	assert.Equal(t, "beta_flow", report.Regressions[0].TestName)
	assert.Equal(t, "alpha_flow", report.Regressions[1].TestName)
	assert.Equal(t, "gamma_flow", report.Regressions[2].TestName)
}

// TestClassifyCounters tests counter bookkeeping across mixed verdicts.
func TestClassifyCounters(t *testing.T) {
	cfg := classifyConfig()
	baselines := map[string]schema.TestBaseline{
		"regressed_flow": baselineEntry(100, "linux-x64"),
		"stable_flow":    baselineEntry(100, "linux-x64"),
		"improved_flow":  baselineEntry(100, "linux-x64"),
	}
	aggregated := map[string][]int64{
		"regressed_flow": {150},
		"stable_flow":    {100},
		"improved_flow":  {50},
		"brand_new_flow": {10},
	}

	report := Classify(aggregated, baselines, cfg)

	assert.Equal(t, 4, report.TotalTests)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.NewTests, 1)
}

func ptr[T any](v T) *T {
	return &v
}
