package core

import (
	"testing"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSummarize tests per-test baseline statistics.
func TestSummarize(t *testing.T) {
	durations := []int64{100, 105, 110, 102, 108}

	b := Summarize("login_flow", durations, "2026-01-15T10:00:00Z", "linux-x64", 95)

	assert.Equal(t, "login_flow", b.TestName)
	assert.Equal(t, 105.0, b.MeanMS)
	assert.Equal(t, 105.0, b.MedianMS)
	assert.Equal(t, 109.6, b.P95MS)
	assert.InDelta(t, 4.12, b.StddevMS, 0.001)
	assert.Equal(t, 5, b.SampleCount)
	assert.Equal(t, "2026-01-15T10:00:00Z", b.LastUpdated)
	assert.Equal(t, "linux-x64", b.Platform)
}

// TestSummarizeSingleSample tests the degenerate single-observation case.
func TestSummarizeSingleSample(t *testing.T) {
	b := Summarize("solo_flow", []int64{42}, "2026-01-15T10:00:00Z", "linux-x64", 95)

	assert.Equal(t, 42.0, b.MeanMS)
	assert.Equal(t, 42.0, b.P95MS)
	assert.Equal(t, 0.0, b.StddevMS)
	assert.Equal(t, 1, b.SampleCount)
}

// TestBuildBaselineDocument tests full-document construction.
func TestBuildBaselineDocument(t *testing.T) {
	cfg := &contract.Config{
		Threshold:  1.20,
		Percentile: 95,
		Platform:   "linux-x64",
	}
	aggregated := map[string][]int64{
		"login_flow":  {100, 105, 110},
		"search_flow": {50, 52},
	}

	doc := BuildBaselineDocument(aggregated, cfg)

	assert.Equal(t, schema.BaselineVersion, doc.Version)
	assert.Equal(t, "linux-x64", doc.Platform)
	assert.Equal(t, 1.20, doc.Threshold)
	assert.NotEmpty(t, doc.GeneratedAt)
	require.Len(t, doc.Tests, 2)

	login := doc.Tests["login_flow"]
	assert.Equal(t, 3, login.SampleCount)
	assert.Equal(t, doc.GeneratedAt, login.LastUpdated)
	assert.Equal(t, "linux-x64", login.Platform)
}
