package mcptools

import (
	"context"

	"github.com/lowkeylabs/applenotes-mcp/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewNotesMCPServer creates an in-memory MCP server exposing the notes tools.
// Returns the server and a client transport for connecting to it.
func NewNotesMCPServer(svc *service.Service) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(svc)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the notes tools registered.
func CreateMCPServer(svc *service.Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "applenotes-mcp",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List recent Apple Notes, optionally scoped to a folder",
	}, ListNotesHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_notes",
		Description: "Retrieve full note content for one or more note IDs",
	}, GetNotesHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Search Apple Notes by text or #hashtag",
	}, SearchNotesHandler(svc))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a new Apple Note with a Markdown body",
	}, CreateNoteHandler(svc))

	return server
}
