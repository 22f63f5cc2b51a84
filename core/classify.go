package core

import (
	"fmt"
	"sort"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// Classify compares per-test aggregated durations against stored
// baselines and produces the regression report. Every test seen this
// run is classified independently as regressed, improved, stable or
// new; stable tests are only counted, never listed.
//
// The thresholds are multiplicative and symmetric in log-space: a test
// regresses when ratio > threshold and improves when ratio < 1/threshold.
// For threshold > 1 the improvement band is narrower in absolute
// percentage than the regression band. That asymmetry is intentional.
func Classify(aggregated map[string][]int64, baselines map[string]schema.TestBaseline, cfg *contract.Config) *schema.RegressionReport {
	report := &schema.RegressionReport{
		Regressions:  []schema.Regression{},
		Improvements: []schema.Improvement{},
		NewTests:     []schema.NewTest{},
		TotalTests:   len(aggregated),
	}

	// Visit tests in sorted order so the report is deterministic.
	names := make([]string, 0, len(aggregated))
	for name := range aggregated {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		durations := aggregated[name]
		currentP95 := Percentile(durations, cfg.Percentile)
		currentMean := Mean(durations)

		baseline, ok := baselines[name]
		if !ok {
			// New test, no baseline to compare against.
			report.NewTests = append(report.NewTests, schema.NewTest{
				TestName:      name,
				CurrentP95MS:  Round2(currentP95),
				CurrentMeanMS: Round2(currentMean),
				Samples:       len(durations),
			})
			continue
		}

		// Cross-platform timing comparison is meaningless, not merely
		// risky, so skip the numeric comparison entirely.
		if baseline.Platform != "" && baseline.Platform != cfg.Platform {
			report.NewTests = append(report.NewTests, schema.NewTest{
				TestName:     name,
				CurrentP95MS: Round2(currentP95),
				Reason:       fmt.Sprintf("platform mismatch (baseline: %s, current: %s)", baseline.Platform, cfg.Platform),
			})
			continue
		}

		if baseline.P95MS <= 0 {
			// Degenerate or corrupt baseline entry.
			report.NewTests = append(report.NewTests, schema.NewTest{
				TestName:     name,
				CurrentP95MS: Round2(currentP95),
				Reason:       "no baseline p95",
			})
			continue
		}

		ratio := currentP95 / baseline.P95MS
		switch {
		case ratio > cfg.Threshold:
			report.Failed++
			report.Regressions = append(report.Regressions, schema.Regression{
				TestName:      name,
				BaselineP95MS: baseline.P95MS,
				CurrentP95MS:  Round2(currentP95),
				Ratio:         Round2(ratio),
				Threshold:     cfg.Threshold,
				RegressionPct: round1((ratio - 1) * 100),
			})
		case ratio < 1/cfg.Threshold:
			report.Passed++
			report.Improvements = append(report.Improvements, schema.Improvement{
				TestName:       name,
				BaselineP95MS:  baseline.P95MS,
				CurrentP95MS:   Round2(currentP95),
				Ratio:          Round2(ratio),
				ImprovementPct: round1((1 - ratio) * 100),
			})
		default:
			// Within threshold, counted but not listed.
			report.Passed++
		}
	}

	// Worst regressions and best improvements first; ties keep name order.
	sort.SliceStable(report.Regressions, func(i, j int) bool {
		return report.Regressions[i].Ratio > report.Regressions[j].Ratio
	})
	sort.SliceStable(report.Improvements, func(i, j int) bool {
		return report.Improvements[i].Ratio < report.Improvements[j].Ratio
	})

	return report
}
