package mcptools

import (
	"context"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
	"github.com/lowkeylabs/applenotes-mcp/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchNotesHandler returns the handler function for the search_notes MCP tool.
func SearchNotesHandler(svc *service.Service) func(ctx context.Context, req *mcp.CallToolRequest, input SearchNotesInput) (*mcp.CallToolResult, service.SearchResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchNotesInput) (*mcp.CallToolResult, service.SearchResult, error) {
		limit := notes.DefaultSearch
		if input.Limit != nil {
			limit = *input.Limit
		}

		return nil, svc.SearchNotes(ctx, input.Query, limit, input.SearchType, input.Folder), nil
	}
}
