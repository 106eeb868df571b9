package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
)

// SearchNotes finds notes matching query. A query starting with "#" is a
// hashtag lookup (prefix stripped); the reported search_type still names the
// caller-facing category so the interface stays stable. Unknown folders
// produce a correctable response listing valid folder names.
func (s *Service) SearchNotes(ctx context.Context, query string, limit int, searchType, folder string) SearchResult {
	kind := notes.NormalizeSearchType(searchType)

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return SearchResult{
			Notes:      []notes.Ref{},
			Query:      query,
			SearchType: "empty",
			Message:    "Empty search query provided. Please specify text to search for.",
		}
	}

	limit = notes.ClampLimit(limit, notes.SearchMax)

	if folder != "" {
		if valid, known := s.folderKnown(ctx, folder); !known {
			return SearchResult{
				Notes:        []notes.Ref{},
				Query:        trimmed,
				SearchType:   kind,
				ValidFolders: valid,
				Message:      fmt.Sprintf("Folder %q not found. Valid folders: %s", folder, strings.Join(valid, ", ")),
			}
		}
	}

	var recs []backend.Record
	var err error
	if tag, isTag := strings.CutPrefix(trimmed, "#"); isTag {
		recs, err = s.searchTag(ctx, tag)
	} else {
		recs, err = s.searchText(ctx, trimmed, backend.SearchKind(kind), folder)
	}
	if err != nil {
		s.log.Error("search failed on all backends", "query", trimmed, "error", err)
		return SearchResult{
			Notes:      []notes.Ref{},
			Query:      trimmed,
			SearchType: "error",
			Error:      fmt.Sprintf("Error searching notes: %v", err),
			Message:    "Failed to search Apple Notes",
		}
	}

	if len(recs) > limit {
		recs = recs[:limit]
	}
	refs := make([]notes.Ref, 0, len(recs))
	for _, r := range recs {
		refs = append(refs, toRef(r))
	}

	return SearchResult{
		Notes:      refs,
		FoundCount: len(refs),
		Query:      trimmed,
		SearchType: kind,
		Message:    fmt.Sprintf("Found %d notes matching %q", len(refs), trimmed),
	}
}

// searchText walks the backend chain, trying each backend's own filter
// first. Only once every filter has failed does it fall back to a
// client-side scan over the full note list of the backends whose filter
// calls failed, in chain order.
func (s *Service) searchText(ctx context.Context, query string, kind backend.SearchKind, folder string) ([]backend.Record, error) {
	var lastErr error
	var failed []backend.Source
	for _, src := range s.sources {
		recs, err := src.Search(ctx, query, kind, folder)
		if err == nil {
			return recs, nil
		}
		if errors.Is(err, backend.ErrUnsupported) {
			continue
		}
		lastErr = err
		s.log.Warn("backend search failed", "backend", src.Name(), "error", err)
		failed = append(failed, src)
	}

	for _, src := range failed {
		s.log.Warn("scanning full note list as last resort", "backend", src.Name())
		all, listErr := src.List(ctx, 0, folder)
		if listErr != nil {
			s.log.Warn("fallback scan failed too", "backend", src.Name(), "error", listErr)
			continue
		}
		return scanRecords(all, query, kind), nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no backend supports search", backend.ErrUnavailable)
	}
	return nil, lastErr
}

func (s *Service) searchTag(ctx context.Context, tag string) ([]backend.Record, error) {
	var lastErr error
	for _, src := range s.sources {
		recs, err := src.SearchTag(ctx, tag)
		if err == nil {
			return recs, nil
		}
		if errors.Is(err, backend.ErrUnsupported) {
			continue
		}
		lastErr = err
		s.log.Warn("tag lookup failed", "backend", src.Name(), "error", err)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no backend supports tag lookup", backend.ErrUnavailable)
	}
	return nil, lastErr
}

// Folders returns folder names from the first backend able to enumerate them.
func (s *Service) Folders(ctx context.Context) ([]string, error) {
	var lastErr error
	for _, src := range s.sources {
		folders, err := src.Folders(ctx)
		if err != nil {
			lastErr = err
			s.log.Warn("folder enumeration failed", "backend", src.Name(), "error", err)
			continue
		}
		return folders, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no backend supports folder listing", backend.ErrUnavailable)
	}
	return nil, lastErr
}

// folderKnown validates folder against the first backend able to enumerate
// folders, matching case-insensitively. When no backend can answer, the
// folder passes through unvalidated and scoping is left to the backends.
func (s *Service) folderKnown(ctx context.Context, folder string) ([]string, bool) {
	for _, src := range s.sources {
		valid, err := src.Folders(ctx)
		if err != nil {
			s.log.Warn("folder enumeration failed", "backend", src.Name(), "error", err)
			continue
		}
		for _, name := range valid {
			if strings.EqualFold(name, folder) {
				return valid, true
			}
		}
		return valid, false
	}
	return nil, true
}

// scanRecords is the last-resort client-side match over a full note list.
func scanRecords(recs []backend.Record, query string, kind backend.SearchKind) []backend.Record {
	q := strings.ToLower(query)
	var out []backend.Record
	for _, r := range recs {
		haystack := r.Title
		if kind == backend.SearchBody {
			haystack = r.Title + "\n" + r.Plaintext
		}
		if strings.Contains(strings.ToLower(haystack), q) {
			out = append(out, r)
		}
	}
	return out
}
