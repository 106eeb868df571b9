package service

import (
	"context"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
)

// ListNotes returns up to limit {title, id} refs, optionally scoped to a
// folder. The limit is clamped into [1, ListMax]. Backends are tried in
// order; when every backend fails the result is an empty slice, never an
// error.
func (s *Service) ListNotes(ctx context.Context, limit int, folder string) []notes.Ref {
	limit = notes.ClampLimit(limit, notes.ListMax)

	for _, src := range s.sources {
		recs, err := src.List(ctx, limit, folder)
		if err != nil {
			s.log.Warn("list failed, trying next backend", "backend", src.Name(), "error", err)
			continue
		}
		if len(recs) > limit {
			recs = recs[:limit]
		}
		refs := make([]notes.Ref, 0, len(recs))
		for _, r := range recs {
			refs = append(refs, toRef(r))
		}
		s.log.Debug("listed notes", "backend", src.Name(), "count", len(refs))
		return refs
	}

	s.log.Warn("no backend could list notes")
	return []notes.Ref{}
}
