package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBudgetReport() schema.BudgetReport {
	return schema.BudgetReport{
		Passed: []schema.BudgetResult{
			{Group: "parse_small", MeanNS: 900, BudgetNS: 1000, Passed: true},
		},
		Failed: []schema.BudgetResult{
			{Group: "parse_large", MeanNS: 2500, BudgetNS: 2000, Passed: false},
		},
	}
}

// TestWriteBudgetReport tests the CI log rendering of budget results.
func TestWriteBudgetReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{}

	require.NoError(t, WriteBudgetReport(&buf, testBudgetReport(), cfg))

	out := buf.String()
	assert.Contains(t, out, "PASSED:")
	assert.Contains(t, out, "parse_small: 0.90µs <= 1.00µs budget")
	assert.Contains(t, out, "FAILED:")
	assert.Contains(t, out, "parse_large: 2.50µs > 2.00µs budget")
	assert.Contains(t, out, "Total: 1 passed, 1 failed")
}

// TestWriteBudgetReportEmpty tests rendering with nothing to check.
func TestWriteBudgetReportEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteBudgetReport(&buf, schema.BudgetReport{}, &contract.Config{}))

	out := buf.String()
	assert.NotContains(t, out, "PASSED:")
	assert.NotContains(t, out, "FAILED:")
	assert.Contains(t, out, "Total: 0 passed, 0 failed")
}

// TestWriteBudgetSummary tests the summary.txt artifact.
func TestWriteBudgetSummary(t *testing.T) {
	benchDir := t.TempDir()

	require.NoError(t, WriteBudgetSummary(benchDir, testBudgetReport()))

	data, err := os.ReadFile(filepath.Join(benchDir, "summary.txt"))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Performance Budget Verification")
	assert.Contains(t, out, "OK: parse_small")
	assert.Contains(t, out, "FAIL: parse_large")
	assert.Contains(t, out, "Total: 1 passed, 1 failed")
}
