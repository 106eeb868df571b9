package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
)

// GetNotes retrieves full notes for the given ids, preserving the caller's
// order. A note that cannot be mapped counts as not found; a total backend
// failure reports every id as not found. The invariant: each input id lands
// in exactly one of Notes or NotFound.
func (s *Service) GetNotes(ctx context.Context, ids []string) GetResult {
	if len(ids) == 0 {
		return GetResult{
			Notes:    []notes.Note{},
			NotFound: []string{},
			Message:  "No IDs provided",
		}
	}

	recs, err := s.getByIDs(ctx, ids)
	if err != nil {
		s.log.Error("note retrieval failed", "error", err, "requested", len(ids))
		return GetResult{
			Notes:    []notes.Note{},
			NotFound: append([]string(nil), ids...),
			Error:    fmt.Sprintf("Error retrieving notes: %v", err),
			Message:  "Failed to retrieve notes from Apple Notes",
		}
	}

	byID := make(map[string]backend.Record, len(recs))
	for _, r := range recs {
		byID[r.ID] = r
	}

	result := GetResult{Notes: []notes.Note{}, NotFound: []string{}}
	for _, id := range ids {
		rec, ok := byID[id]
		if !ok {
			result.NotFound = append(result.NotFound, id)
			continue
		}
		note, err := toNote(rec)
		if err != nil {
			s.log.Warn("dropping unmappable note", "id", id, "error", err)
			result.NotFound = append(result.NotFound, id)
			continue
		}
		result.Notes = append(result.Notes, note)
	}

	result.FoundCount = len(result.Notes)
	result.Message = fmt.Sprintf("Retrieved %d of %d requested notes", result.FoundCount, len(ids))
	return result
}

// getByIDs asks the first backend that supports retrieval by id. Only the
// live scripting path does today; the parser declines with ErrUnsupported.
func (s *Service) getByIDs(ctx context.Context, ids []string) ([]backend.Record, error) {
	for _, src := range s.sources {
		recs, err := src.GetByIDs(ctx, ids)
		if errors.Is(err, backend.ErrUnsupported) {
			continue
		}
		return recs, err
	}
	return nil, fmt.Errorf("%w: no backend supports retrieval by id", backend.ErrUnavailable)
}
