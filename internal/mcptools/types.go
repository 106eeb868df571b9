package mcptools

import "github.com/lowkeylabs/applenotes-mcp/internal/notes"

// ListNotesInput is the input schema for the list_notes MCP tool. Limit is
// a pointer so an absent field (default applies) stays distinguishable from
// an explicit 0 (clamped up to 1).
type ListNotesInput struct {
	Limit  *int   `json:"limit,omitempty" jsonschema-description:"Maximum number of notes to return (default 50, max 1000)"`
	Folder string `json:"folder,omitempty" jsonschema-description:"Restrict results to this folder"`
}

// ListNotesOutput is the output schema for the list_notes MCP tool.
type ListNotesOutput struct {
	Notes []notes.Ref `json:"notes"`
}

// GetNotesInput is the input schema for the get_notes MCP tool.
type GetNotesInput struct {
	IDs []string `json:"ids" jsonschema-description:"Note IDs to retrieve"`
}

// SearchNotesInput is the input schema for the search_notes MCP tool.
type SearchNotesInput struct {
	Query      string `json:"query" jsonschema-description:"Text to search for; prefix with # to match a hashtag"`
	Limit      *int   `json:"limit,omitempty" jsonschema-description:"Maximum number of results (default 10, max 100)"`
	SearchType string `json:"search_type,omitempty" jsonschema-description:"Where to match: body (titles and content) or name (titles only)"`
	Folder     string `json:"folder,omitempty" jsonschema-description:"Restrict the search to this folder"`
}

// CreateNoteInput is the input schema for the create_note MCP tool.
type CreateNoteInput struct {
	Title  string `json:"title" jsonschema-description:"Note title"`
	Body   string `json:"body,omitempty" jsonschema-description:"Note body in Markdown"`
	Folder string `json:"folder,omitempty" jsonschema-description:"Folder to create the note in (default account folder when empty)"`
}
