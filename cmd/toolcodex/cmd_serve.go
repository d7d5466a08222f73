package main

import (
	"context"

	"github.com/spf13/cobra"

	"toolcodex/internal/catalog"
	"toolcodex/internal/logging"
	mcpserver "toolcodex/internal/mcp"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveFlags struct {
	catalogPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve catalog queries over MCP on stdio",
	Long: `Starts an MCP server over stdin/stdout exposing read-only queries
against an extracted catalog: search_suites, get_suite and
list_categories.

The server monitors for parent process death. When the connecting
editor or agent goes away, the server self-terminates to prevent
zombie processes.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVarP(&serveFlags.catalogPath, "all", "a", "", "Catalog JSON path produced by extract or filter (required)")

	cobra.CheckErr(serveCmd.MarkFlagRequired("all"))
}

func runServe(cmd *cobra.Command, _ []string) error {
	c, err := catalog.LoadJSON(serveFlags.catalogPath)
	if err != nil {
		return err
	}

	srv := mcpserver.NewServer(c, version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting toolcodex MCP server over stdio",
		"suites", c.Len(), "catalog", serveFlags.catalogPath)
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
