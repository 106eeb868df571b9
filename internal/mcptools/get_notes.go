package mcptools

import (
	"context"

	"github.com/lowkeylabs/applenotes-mcp/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetNotesHandler returns the handler function for the get_notes MCP tool.
// Lookup failures are reported inside the result, never as protocol errors,
// so one bad ID can't sink a batch.
func GetNotesHandler(svc *service.Service) func(ctx context.Context, req *mcp.CallToolRequest, input GetNotesInput) (*mcp.CallToolResult, service.GetResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetNotesInput) (*mcp.CallToolResult, service.GetResult, error) {
		return nil, svc.GetNotes(ctx, input.IDs), nil
	}
}
