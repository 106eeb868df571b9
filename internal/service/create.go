package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	"github.com/lowkeylabs/applenotes-mcp/internal/markup"
)

// CreateNote creates a note with a Markdown body via the first backend with
// write capability. Validation failures short-circuit before any backend
// call; creation failures come back as structured results, never errors.
func (s *Service) CreateNote(ctx context.Context, title, body, folder string) CreateResult {
	title = strings.TrimSpace(title)
	if title == "" {
		return CreateResult{
			Error:   "Note title cannot be empty",
			Message: "Please provide a valid note title",
		}
	}

	if folder != "" {
		if valid, known := s.folderKnown(ctx, folder); !known {
			return CreateResult{
				Error:   fmt.Sprintf("Folder %q not found", folder),
				Message: fmt.Sprintf("Valid folders: %s", strings.Join(valid, ", ")),
			}
		}
	}

	htmlBody := markup.ToHTML(body)

	for _, src := range s.sources {
		rec, err := src.Create(ctx, title, htmlBody, folder)
		if errors.Is(err, backend.ErrUnsupported) {
			continue
		}
		if errors.Is(err, backend.ErrUnavailable) {
			s.log.Error("write backend unavailable", "backend", src.Name(), "error", err)
			return CreateResult{
				Error:   err.Error(),
				Message: "Apple Notes scripting is unavailable on this system",
			}
		}
		if err != nil {
			s.log.Error("note creation failed", "backend", src.Name(), "error", err)
			return CreateResult{
				Error:   fmt.Sprintf("Failed to create note: %v", err),
				Message: "Failed to create note in Apple Notes",
			}
		}

		created := toCreated(rec)
		s.log.Info("created note", "backend", src.Name(), "id", created.ID)
		return CreateResult{
			Success: true,
			Note:    &created,
			Message: fmt.Sprintf("Successfully created note %q", created.Name),
		}
	}

	return CreateResult{
		Error:   "no backend supports note creation",
		Message: "Failed to create note in Apple Notes",
	}
}
