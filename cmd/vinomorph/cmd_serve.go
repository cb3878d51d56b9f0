package main

import (
	"context"

	"github.com/spf13/cobra"

	"vinomorph/internal/logging"
	mcpserver "vinomorph/internal/mcp"
	"vinomorph/internal/vocabulary"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing the morphospace and
vocabulary tools. MCP clients connect via their server configuration and
call the tools directly.

The server monitors for parent process death. When the client disconnects
or restarts, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	tables, err := vocabulary.Load()
	if err != nil {
		return err
	}

	srv := mcpserver.NewServer(reg, tables, version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting vinomorph MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
