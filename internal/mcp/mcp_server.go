// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/perfgate/perfgate/internal/contract"
)

// NewMCPServer initializes and configures the Perfgate MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.BaselineStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Perfgate Regression Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: check_regressions ---
	s.AddTool(mcp.NewTool("check_regressions",
		mcp.WithDescription("Compare current test timing logs against the stored performance baseline."),
		mcp.WithString("log_dir", mcp.Description("Directory containing JSONL timing logs (defaults to the configured log directory).")),
		mcp.WithNumber("threshold", mcp.Description("Regression threshold as a ratio, e.g. 1.2 for 20% slower.")),
	), h.handleCheckRegressions)

	// --- 2. Tool: update_baseline ---
	s.AddTool(mcp.NewTool("update_baseline",
		mcp.WithDescription("Rebuild the performance baseline from current timing logs, replacing the stored document."),
		mcp.WithString("log_dir", mcp.Description("Directory containing JSONL timing logs.")),
	), h.handleUpdateBaseline)

	// --- 3. Tool: baseline_status ---
	s.AddTool(mcp.NewTool("baseline_status",
		mcp.WithDescription("Show metadata about the stored performance baseline."),
	), h.handleBaselineStatus)

	// --- 4. Tool: check_budgets ---
	s.AddTool(mcp.NewTool("check_budgets",
		mcp.WithDescription("Check Criterion benchmark estimates against configured time budgets."),
		mcp.WithString("budget_dir", mcp.Description("Directory containing Criterion benchmark output.")),
	), h.handleCheckBudgets)

	return s
}

// StartMCPServer starts the Perfgate MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.BaselineStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
