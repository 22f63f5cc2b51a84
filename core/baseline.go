package core

import (
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// Summarize computes the persisted summary statistics for one test from
// its current-run durations. Statistics are rounded to 2 decimals; the
// sample count reflects every raw duration that contributed. Fewer than
// MinSamples observations still produce a baseline entry, just a less
// reliable one.
func Summarize(testName string, durations []int64, lastUpdated, platform string, percentile float64) schema.TestBaseline {
	return schema.TestBaseline{
		TestName:    testName,
		MeanMS:      Round2(Mean(durations)),
		MedianMS:    Round2(Median(durations)),
		P95MS:       Round2(Percentile(durations, percentile)),
		StddevMS:    Round2(SampleStddev(durations)),
		SampleCount: len(durations),
		LastUpdated: lastUpdated,
		Platform:    platform,
	}
}

// BuildBaselineDocument summarizes every aggregated test into a full
// replacement baseline document tagged with the current platform and
// timestamp. Tests present in an older baseline but absent from the
// aggregation do not survive: saving is a full overwrite, not a merge.
func BuildBaselineDocument(aggregated map[string][]int64, cfg *contract.Config) schema.BaselineDocument {
	now := contract.TimestampUTC()
	tests := make(map[string]schema.TestBaseline, len(aggregated))
	for name, durations := range aggregated {
		tests[name] = Summarize(name, durations, now, cfg.Platform, cfg.Percentile)
	}
	return schema.BaselineDocument{
		Version:     schema.BaselineVersion,
		GeneratedAt: now,
		Platform:    cfg.Platform,
		Threshold:   cfg.Threshold,
		Tests:       tests,
	}
}
