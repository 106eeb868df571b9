// Package backend defines the contract shared by the two note-store access
// paths: the read-only database parser and the live Notes.app scripting
// bridge. The normalization layer in internal/service works exclusively in
// terms of this package.
package backend

import (
	"context"
	"errors"
)

// Sentinel errors for backend operations.
var (
	// ErrUnavailable means the backend cannot be reached at all, e.g. the
	// Notes database file is missing or osascript is not on PATH.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrUnsupported means this backend does not implement the requested
	// capability. The caller should try the next source in its chain.
	ErrUnsupported = errors.New("operation not supported by this backend")

	// ErrNotFound means a requested note does not exist.
	ErrNotFound = errors.New("note not found")
)

// SearchKind selects the field a substring search runs against.
type SearchKind string

const (
	SearchBody SearchKind = "body"
	SearchName SearchKind = "name"
)

// Record is the uniform intermediate shape every adapter maps its native
// rows or script output into. Adapters coerce defensively: numeric
// identifiers become strings, NULLs become zero values, dates stay raw
// strings so the normalization layer owns timestamp policy.
type Record struct {
	ID                string
	Title             string
	Body              string
	Plaintext         string
	CreationDate      string // as reported by the backend, may be empty
	ModificationDate  string
	Account           string
	Folder            string
	PasswordProtected bool
}

// Source is one note-store access path. Implementations open their own
// connection per call and hold no state between calls.
type Source interface {
	// Name identifies the source in logs and error messages.
	Name() string

	// List returns up to limit notes, optionally scoped to a folder by
	// case-insensitive substring match. limit <= 0 means no limit.
	List(ctx context.Context, limit int, folder string) ([]Record, error)

	// GetByIDs returns full records for the given identifiers. Missing ids
	// are simply absent from the result.
	GetByIDs(ctx context.Context, ids []string) ([]Record, error)

	// Search returns notes whose body or title contains query.
	Search(ctx context.Context, query string, kind SearchKind, folder string) ([]Record, error)

	// SearchTag returns notes carrying the given hashtag (without the "#").
	SearchTag(ctx context.Context, tag string) ([]Record, error)

	// Create makes a new note with an HTML body, optionally in folder.
	Create(ctx context.Context, title, htmlBody, folder string) (Record, error)

	// Folders returns the names of all known folders.
	Folders(ctx context.Context) ([]string, error)
}
