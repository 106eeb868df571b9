// Package notes defines the output projections shared by the MCP tools and
// the CLI, along with the sentinel values substituted for missing data.
package notes

import (
	"strings"
	"unicode/utf8"
)

// Sentinels used when a backend field is absent or unreadable.
const (
	UntitledTitle   = "Untitled"
	UnknownID       = "unknown"
	UnknownName     = "Unknown"
	PreviewMaxLen   = 200
	PreviewEllipsis = "..."
)

// Limits for list and search operations. Out-of-range values are silently
// clamped, never rejected.
const (
	ListMax       = 1000
	SearchMax     = 100
	DefaultList   = 50
	DefaultSearch = 10
)

// Note is the full read projection of a single note.
type Note struct {
	Name              string `json:"name"`
	ID                string `json:"id"`
	Body              string `json:"body"`
	Plaintext         string `json:"plaintext"`
	CreationDate      string `json:"creation_date,omitempty"`
	ModificationDate  string `json:"modification_date,omitempty"`
	Account           string `json:"account"`
	Folder            string `json:"folder"`
	PasswordProtected bool   `json:"password_protected"`
}

// Ref is the reduced projection returned by list and search.
type Ref struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}

// CreatedNote is the projection returned after a successful create.
type CreatedNote struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	BodyPreview  string `json:"body_preview"`
	CreationDate string `json:"creation_date,omitempty"`
	Account      string `json:"account"`
	Folder       string `json:"folder"`
}

// ClampLimit corrects a caller-supplied limit into [1, max].
func ClampLimit(n, max int) int {
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}

// TitleOr substitutes the Untitled sentinel for empty titles.
func TitleOr(title string) string {
	if title == "" {
		return UntitledTitle
	}
	return title
}

// StringOr substitutes def when s is empty.
func StringOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Preview truncates s to at most max bytes, appending an ellipsis marker
// only when truncation occurred. The cut never splits a multibyte rune:
// it backs up to the nearest rune boundary so the result stays valid UTF-8.
func Preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + PreviewEllipsis
}

// NormalizeSearchType coerces unsupported search types to "body".
func NormalizeSearchType(kind string) string {
	if strings.EqualFold(kind, "name") {
		return "name"
	}
	return "body"
}
