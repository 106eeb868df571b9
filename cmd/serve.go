package cmd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/mcptools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes Apple Notes
tools over stdio transport, for MCP clients such as Claude Desktop.

Available tools:
  - list_notes: List recent notes, optionally scoped to a folder
  - get_notes: Retrieve full note content by ID
  - search_notes: Search notes by text or #hashtag
  - create_note: Create a note with a Markdown body

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "apple-notes": {
        "command": "/path/to/applenotes-mcp",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(svc)

	// stdout is reserved for MCP protocol traffic
	logger.Info("starting MCP server", "transport", "stdio", "backend", appConfig.Backend)

	// Blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
