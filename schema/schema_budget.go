package schema

// BudgetEstimate holds the parsed point estimates for one benchmark group.
// Values are nanoseconds, matching the estimate files produced by the
// benchmark harness.
type BudgetEstimate struct {
	Group    string  `json:"group"`
	MeanNS   float64 `json:"mean_ns"`
	MedianNS float64 `json:"median_ns"`
	StddevNS float64 `json:"stddev_ns"`
}

// BudgetResult is the outcome of checking one benchmark group against
// its fixed budget.
type BudgetResult struct {
	Group    string  `json:"group"`
	MeanNS   float64 `json:"mean_ns"`
	BudgetNS float64 `json:"budget_ns"`
	Passed   bool    `json:"passed"`
}

// BudgetReport collects all budget check outcomes for one invocation.
type BudgetReport struct {
	Passed []BudgetResult `json:"passed"`
	Failed []BudgetResult `json:"failed"`
}
