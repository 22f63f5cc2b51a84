package core

import (
	"errors"
	"fmt"

	"github.com/perfgate/perfgate/internal/baselinestore"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/internal/ingest"
	"github.com/perfgate/perfgate/schema"
)

// CheckResult bundles the classification outcome with ingestion
// diagnostics so callers can decide how to surface them.
type CheckResult struct {
	Report     *schema.RegressionReport
	Warnings   []string
	NoTimings  bool
	NoBaseline bool
}

// GetCheckResults ingests timing logs, loads the stored baseline and
// classifies every test against it.
func GetCheckResults(cfg *contract.Config, store contract.BaselineStore) (*CheckResult, error) {
	records, warnings := ingest.ParseLogs(cfg.LogDir, cfg.Platform)
	aggregated := Aggregate(records)

	baselines, err := store.Load()
	if err != nil {
		if !errors.Is(err, baselinestore.ErrCorruptBaseline) {
			return nil, fmt.Errorf("load baseline: %w", err)
		}
		warnings = append(warnings, fmt.Sprintf("baseline unreadable, treating all tests as new: %v", err))
		baselines = map[string]schema.TestBaseline{}
	}

	report := Classify(aggregated, baselines, cfg)
	return &CheckResult{
		Report:     report,
		Warnings:   warnings,
		NoTimings:  len(aggregated) == 0,
		NoBaseline: len(baselines) == 0,
	}, nil
}

// GetBaselineUpdateResults ingests timing logs, summarizes them into a
// fresh baseline document and persists it, replacing any prior document.
func GetBaselineUpdateResults(cfg *contract.Config, store contract.BaselineStore) (schema.BaselineDocument, []string, error) {
	records, warnings := ingest.ParseLogs(cfg.LogDir, cfg.Platform)
	aggregated := Aggregate(records)
	if len(aggregated) == 0 {
		return schema.BaselineDocument{}, warnings, fmt.Errorf("no timing records found under %s", cfg.LogDir)
	}

	doc := BuildBaselineDocument(aggregated, cfg)
	if err := store.Save(doc); err != nil {
		return schema.BaselineDocument{}, warnings, fmt.Errorf("save baseline: %w", err)
	}
	return doc, warnings, nil
}

// GetBudgetResults parses Criterion-style benchmark estimates and
// checks every group against its configured budget.
func GetBudgetResults(cfg *contract.Config) (*schema.BudgetReport, []string, error) {
	estimates, warnings := ingest.ParseBudgetEstimates(cfg.BudgetDir)
	report := CheckBudgets(estimates, cfg.Budgets)
	return &report, warnings, nil
}
