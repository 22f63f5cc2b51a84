package cmd

import (
	"github.com/perfgate/perfgate/internal/baselinestore"
	"github.com/perfgate/perfgate/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Perfgate MCP server",
	Long:  `Launch an MCP server that allows AI agents to run regression and budget checks via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean for the protocol; setup logs go to stderr.
		return sharedSetup(cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, baselinestore.GetStore())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
