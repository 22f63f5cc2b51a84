package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEstimates = `{
  "mean": {"point_estimate": 1250.5},
  "median": {"point_estimate": 1200.0},
  "std_dev": {"point_estimate": 85.25}
}`

func writeEstimates(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(sampleEstimates), 0o644))
}

// TestParseBudgetEstimates tests discovery of direct and nested group layouts.
func TestParseBudgetEstimates(t *testing.T) {
	benchDir := t.TempDir()

	// Flat group: <group>/new/estimates.json
	writeEstimates(t, filepath.Join(benchDir, "parse_small", "new", "estimates.json"))

	// Parameterized group: <group>/<param>/new/estimates.json
	writeEstimates(t, filepath.Join(benchDir, "parse_large", "utf8", "new", "estimates.json"))

	// Stray file at top level is ignored.
	require.NoError(t, os.WriteFile(filepath.Join(benchDir, "README.txt"), []byte("x"), 0o644))

	estimates, warnings := ParseBudgetEstimates(benchDir)
	require.Empty(t, warnings)
	require.Len(t, estimates, 2)

	small := estimates["parse_small"]
	assert.Equal(t, "parse_small", small.Group)
	assert.Equal(t, 1250.5, small.MeanNS)
	assert.Equal(t, 1200.0, small.MedianNS)
	assert.Equal(t, 85.25, small.StddevNS)

	assert.Equal(t, "parse_large", estimates["parse_large"].Group)
}

// TestParseBudgetEstimatesMalformed tests that a bad file warns and skips.
func TestParseBudgetEstimatesMalformed(t *testing.T) {
	benchDir := t.TempDir()
	badPath := filepath.Join(benchDir, "broken_group", "new", "estimates.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(badPath), 0o755))
	require.NoError(t, os.WriteFile(badPath, []byte("{oops"), 0o644))

	estimates, warnings := ParseBudgetEstimates(benchDir)
	assert.Empty(t, estimates)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "broken_group")
}

// TestParseBudgetEstimatesMissingDir tests that an absent directory is
// not an error.
func TestParseBudgetEstimatesMissingDir(t *testing.T) {
	estimates, warnings := ParseBudgetEstimates(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, estimates)
	assert.Empty(t, warnings)
}

// TestParseBudgetEstimatesGroupWithoutFile tests that group directories
// without estimates are silently skipped.
func TestParseBudgetEstimatesGroupWithoutFile(t *testing.T) {
	benchDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(benchDir, "empty_group"), 0o755))

	estimates, warnings := ParseBudgetEstimates(benchDir)
	assert.Empty(t, estimates)
	assert.Empty(t, warnings)
}
