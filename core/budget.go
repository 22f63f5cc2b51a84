package core

import (
	"sort"
	"strings"

	"github.com/perfgate/perfgate/schema"
)

// CheckBudgets compares benchmark mean estimates against fixed budgets.
// A budget name matches a benchmark group when the group name equals the
// budget name or starts with it, so parameterized groups share the
// budget of their prefix. Groups without a matching budget are skipped.
func CheckBudgets(estimates map[string]schema.BudgetEstimate, budgets map[string]float64) schema.BudgetReport {
	report := schema.BudgetReport{
		Passed: []schema.BudgetResult{},
		Failed: []schema.BudgetResult{},
	}

	groups := make([]string, 0, len(estimates))
	for group := range estimates {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		budgetNS, ok := matchBudget(group, budgets)
		if !ok {
			continue
		}

		est := estimates[group]
		result := schema.BudgetResult{
			Group:    group,
			MeanNS:   est.MeanNS,
			BudgetNS: budgetNS,
			Passed:   est.MeanNS <= budgetNS,
		}
		if result.Passed {
			report.Passed = append(report.Passed, result)
		} else {
			report.Failed = append(report.Failed, result)
		}
	}

	return report
}

// matchBudget finds the budget for a benchmark group. Exact names win
// over prefix matches; among prefix matches the longest prefix wins.
func matchBudget(group string, budgets map[string]float64) (float64, bool) {
	if budget, ok := budgets[group]; ok {
		return budget, true
	}

	bestLen := -1
	var bestBudget float64
	for name, budget := range budgets {
		if strings.HasPrefix(group, name) && len(name) > bestLen {
			bestLen = len(name)
			bestBudget = budget
		}
	}
	return bestBudget, bestLen >= 0
}
