package main

import (
	"github.com/aretw0/nfasim/internal/cli"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes a catalog of Markdown automata as MCP tools, so AI agents can list
automata, simulate words and fetch stored runs.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		store, closeStore, err := cli.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		return cli.ServeMCP(cmd.Context(), cli.MCPOptions{
			Dir:       dir,
			Transport: transport,
			Port:      port,
			Policy:    cfg.Policy(),
			Store:     store,
		}, logger)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("dir", ".", "Directory containing the automaton catalog")
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
