package mcptools

import (
	"context"

	"github.com/lowkeylabs/applenotes-mcp/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreateNoteHandler returns the handler function for the create_note MCP tool.
func CreateNoteHandler(svc *service.Service) func(ctx context.Context, req *mcp.CallToolRequest, input CreateNoteInput) (*mcp.CallToolResult, service.CreateResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateNoteInput) (*mcp.CallToolResult, service.CreateResult, error) {
		return nil, svc.CreateNote(ctx, input.Title, input.Body, input.Folder), nil
	}
}
