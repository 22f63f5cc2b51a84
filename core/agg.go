package core

import "github.com/perfgate/perfgate/schema"

// Aggregate groups raw timing records by test name, preserving every
// duration as a distinct sample. No deduplication and no ordering
// requirement; platform is deliberately not part of the grouping key
// since comparisons are scoped to the single process-wide platform.
func Aggregate(records []schema.TimingRecord) map[string][]int64 {
	aggregated := make(map[string][]int64)
	for _, r := range records {
		aggregated[r.TestName] = append(aggregated[r.TestName], r.DurationMS)
	}
	return aggregated
}
