package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/perfgate/perfgate/core"
	"github.com/perfgate/perfgate/internal/contract"
	"github.com/perfgate/perfgate/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.BaselineStore
}

func (h *toolHandler) handleCheckRegressions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("log_dir", ""); d != "" {
		cfg.LogDir = d
	}
	if t := request.GetFloat("threshold", 0); t > 1.0 {
		cfg.Threshold = t
	}

	result, err := core.GetCheckResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("regression check failed: %v", err)), nil
	}

	doc := schema.BuildReportDocument(result.Report, contract.TimestampUTC(), cfg.Platform)
	jsonData, _ := json.MarshalIndent(doc, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleUpdateBaseline(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("log_dir", ""); d != "" {
		cfg.LogDir = d
	}

	doc, _, err := core.GetBaselineUpdateResults(cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("baseline update failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(doc, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleBaselineStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := h.store.Status()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("baseline status failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleCheckBudgets(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("budget_dir", ""); d != "" {
		cfg.BudgetDir = d
	}

	report, _, err := core.GetBudgetResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("budget check failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
