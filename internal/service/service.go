// Package service is the normalization layer between the tool boundary and
// the note-store backends. Every operation validates its inputs, walks an
// ordered chain of backends, maps whatever records come back onto the fixed
// output schema and absorbs all failure into well-formed result shapes. No
// operation ever returns an error to its caller.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
)

// Service holds the backend chain, ordered fastest first. It is stateless
// across calls.
type Service struct {
	sources []backend.Source
	log     *slog.Logger
}

func New(log *slog.Logger, sources ...backend.Source) *Service {
	return &Service{sources: sources, log: log}
}

// GetResult is the response shape of the get_notes operation. Every
// requested id appears in exactly one of Notes or NotFound.
type GetResult struct {
	Notes      []notes.Note `json:"notes"`
	FoundCount int          `json:"found_count"`
	NotFound   []string     `json:"not_found"`
	Message    string       `json:"message"`
	Error      string       `json:"error,omitempty"`
}

// SearchResult is the response shape of the search_notes operation.
type SearchResult struct {
	Notes        []notes.Ref `json:"notes"`
	FoundCount   int         `json:"found_count"`
	Query        string      `json:"query"`
	SearchType   string      `json:"search_type"`
	Message      string      `json:"message"`
	Error        string      `json:"error,omitempty"`
	ValidFolders []string    `json:"valid_folders,omitempty"`
}

// CreateResult is the response shape of the create_note operation.
type CreateResult struct {
	Success bool               `json:"success"`
	Note    *notes.CreatedNote `json:"note,omitempty"`
	Error   string             `json:"error,omitempty"`
	Message string             `json:"message"`
}

func toRef(r backend.Record) notes.Ref {
	return notes.Ref{
		Title: notes.TitleOr(r.Title),
		ID:    notes.StringOr(r.ID, notes.UnknownID),
	}
}

// toNote maps a backend record onto the full projection. It fails only when
// the record carries a timestamp that cannot be interpreted; the caller
// isolates that failure to the single note.
func toNote(r backend.Record) (notes.Note, error) {
	created, err := normalizeDate(r.CreationDate)
	if err != nil {
		return notes.Note{}, err
	}
	modified, err := normalizeDate(r.ModificationDate)
	if err != nil {
		return notes.Note{}, err
	}
	return notes.Note{
		Name:              notes.TitleOr(r.Title),
		ID:                notes.StringOr(r.ID, notes.UnknownID),
		Body:              r.Body,
		Plaintext:         r.Plaintext,
		CreationDate:      created,
		ModificationDate:  modified,
		Account:           notes.StringOr(r.Account, notes.UnknownName),
		Folder:            notes.StringOr(r.Folder, notes.UnknownName),
		PasswordProtected: r.PasswordProtected,
	}, nil
}

func toCreated(r backend.Record) notes.CreatedNote {
	created, err := normalizeDate(r.CreationDate)
	if err != nil {
		created = ""
	}
	return notes.CreatedNote{
		Name:         notes.TitleOr(r.Title),
		ID:           notes.StringOr(r.ID, notes.UnknownID),
		BodyPreview:  notes.Preview(r.Plaintext, notes.PreviewMaxLen),
		CreationDate: created,
		Account:      notes.StringOr(r.Account, notes.UnknownName),
		Folder:       notes.StringOr(r.Folder, notes.UnknownName),
	}
}

// Accepted backend timestamp layouts: RFC3339 (the parser), JavaScript
// toISOString (the scripting bridge) and zone-less local timestamps.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"}

func normalizeDate(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("unrecognized timestamp %q", raw)
}
