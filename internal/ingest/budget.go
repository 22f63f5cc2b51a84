package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/perfgate/perfgate/schema"
)

// pointEstimate is one statistic block in a benchmark estimates file.
type pointEstimate struct {
	PointEstimate float64 `json:"point_estimate"`
}

// estimatesFile is the on-disk shape of <group>/new/estimates.json.
type estimatesFile struct {
	Mean   pointEstimate `json:"mean"`
	Median pointEstimate `json:"median"`
	StdDev pointEstimate `json:"std_dev"`
}

// ParseBudgetEstimates walks benchDir for benchmark groups and parses
// their latest point estimates. Each group directory is expected to
// hold new/estimates.json; parameterized groups keep it one level
// deeper, in which case the first subdirectory that has one wins.
// Unreadable estimate files are skipped with a warning.
func ParseBudgetEstimates(benchDir string) (map[string]schema.BudgetEstimate, []string) {
	estimates := make(map[string]schema.BudgetEstimate)
	var warnings []string

	groups, err := os.ReadDir(benchDir)
	if err != nil {
		return estimates, warnings
	}

	for _, group := range groups {
		if !group.IsDir() {
			continue
		}
		groupName := group.Name()
		groupPath := filepath.Join(benchDir, groupName)

		estimatesPath := findEstimatesFile(groupPath)
		if estimatesPath == "" {
			continue
		}

		est, err := parseEstimatesFile(estimatesPath)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not parse %s: %v", estimatesPath, err))
			continue
		}
		est.Group = groupName
		estimates[groupName] = est
	}
	return estimates, warnings
}

// findEstimatesFile locates new/estimates.json directly under the
// group, falling back to one subdirectory deeper.
func findEstimatesFile(groupPath string) string {
	direct := filepath.Join(groupPath, "new", "estimates.json")
	if _, err := os.Stat(direct); err == nil {
		return direct
	}

	subs, err := os.ReadDir(groupPath)
	if err != nil {
		return ""
	}
	for _, sub := range subs {
		if !sub.IsDir() {
			continue
		}
		nested := filepath.Join(groupPath, sub.Name(), "new", "estimates.json")
		if _, err := os.Stat(nested); err == nil {
			return nested
		}
	}
	return ""
}

// parseEstimatesFile reads one estimates.json into point estimates.
func parseEstimatesFile(path string) (schema.BudgetEstimate, error) {
	var est schema.BudgetEstimate

	data, err := os.ReadFile(path)
	if err != nil {
		return est, err
	}

	var parsed estimatesFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return est, err
	}

	est.MeanNS = parsed.Mean.PointEstimate
	est.MedianNS = parsed.Median.PointEstimate
	est.StddevNS = parsed.StdDev.PointEstimate
	return est, nil
}
