package main

import (
	"fmt"

	"github.com/aretw0/branchtale/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [dir]",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the reader as MCP tools (view, select_choice, restart)
and resources (branchtale://view, branchtale://path).

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		transport, _ := cmd.Flags().GetString("transport")
		opts := cli.MCPOptions{Config: cfg}
		switch transport {
		case "stdio":
		case "sse":
			opts.SSEPort = cfg.Port
		default:
			return fmt.Errorf("unknown transport %q (want stdio or sse)", transport)
		}
		return cli.RunMCP(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringP("transport", "t", "stdio", "Transport: stdio or sse")
	mcpCmd.Flags().IntP("port", "p", 8080, "Port for the sse transport")
}
