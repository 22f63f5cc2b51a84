// Package schema holds the shared data structures for perfgate.
package schema

// TimingRecord is one observed duration for one named test.
// Records are produced by log ingestion and consumed by aggregation;
// they are never mutated after creation.
type TimingRecord struct {
	TestName   string `json:"test_name"`   // Name of the test that produced this sample
	DurationMS int64  `json:"duration_ms"` // Observed duration in milliseconds (>= 0)
	Timestamp  string `json:"timestamp"`   // ISO-8601 timestamp of the observation, may be empty
	Platform   string `json:"platform"`    // Normalized os-arch tag of the machine that ran the test
}

// TestBaseline is the persisted summary statistics for a single test.
// The p95 value is the authoritative comparison metric; mean and median
// are retained for diagnostic display only.
type TestBaseline struct {
	TestName    string  `json:"-"` // Map key in the baseline document, not serialized
	MeanMS      float64 `json:"mean_ms"`
	MedianMS    float64 `json:"median_ms"`
	P95MS       float64 `json:"p95_ms"`
	StddevMS    float64 `json:"stddev_ms"`
	SampleCount int     `json:"sample_count"`
	LastUpdated string  `json:"last_updated"`
	Platform    string  `json:"platform"`
}

// BaselineDocument is the versioned on-disk shape of a baseline.
// Saving always writes a full replacement document: tests absent from
// the current run are dropped, never merged.
type BaselineDocument struct {
	Version     string                  `json:"version"`
	GeneratedAt string                  `json:"generated_at"`
	Platform    string                  `json:"platform"`
	Threshold   float64                 `json:"threshold"`
	Tests       map[string]TestBaseline `json:"tests"`
}

// StoreStatus reports health information about a baseline store.
type StoreStatus struct {
	Backend   string `json:"backend"`
	Location  string `json:"location"`
	Connected bool   `json:"connected"`
	TestCount int    `json:"test_count"`
	Platform  string `json:"platform,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
