package mcptools

import (
	"context"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
	"github.com/lowkeylabs/applenotes-mcp/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListNotesHandler returns the handler function for the list_notes MCP tool.
func ListNotesHandler(svc *service.Service) func(ctx context.Context, req *mcp.CallToolRequest, input ListNotesInput) (*mcp.CallToolResult, ListNotesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListNotesInput) (*mcp.CallToolResult, ListNotesOutput, error) {
		limit := notes.DefaultList
		if input.Limit != nil {
			limit = *input.Limit
		}

		refs := svc.ListNotes(ctx, limit, input.Folder)
		return nil, ListNotesOutput{Notes: refs}, nil
	}
}
