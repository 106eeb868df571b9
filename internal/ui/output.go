package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
)

// FormatRefList formats a list of note references as a table.
func FormatRefList(w io.Writer, refs []notes.Ref) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return
	}
	width := 0
	for _, r := range refs {
		if len(r.ID) > width {
			width = len(r.ID)
		}
	}
	for _, r := range refs {
		fmt.Fprintf(w, "%-*s  %s\n", width, r.ID, r.Title)
	}
}

// FormatNoteFull formats a full note display with metadata header. The body
// is the recovered plaintext rendered through glamour.
func FormatNoteFull(w io.Writer, n notes.Note) {
	fmt.Fprintf(w, "Note: %s\n", n.Name)
	fmt.Fprintf(w, "ID: %s\n", n.ID)
	fmt.Fprintf(w, "Folder: %s\n", n.Folder)
	fmt.Fprintf(w, "Account: %s\n", n.Account)
	if n.CreationDate != "" {
		fmt.Fprintf(w, "Created: %s\n", n.CreationDate)
	}
	if n.ModificationDate != "" {
		fmt.Fprintf(w, "Modified: %s\n", n.ModificationDate)
	}
	if n.PasswordProtected {
		fmt.Fprintln(w, "Locked: yes")
	}
	fmt.Fprintln(w)

	body := n.Plaintext
	if body == "" {
		body = n.Body
	}
	fmt.Fprintln(w, RenderMarkdown(body, 80))
}

// FormatCreated formats a creation confirmation message.
func FormatCreated(w io.Writer, n notes.CreatedNote) {
	fmt.Fprintf(w, "Created note %q (%s) in %s\n", n.Name, n.ID, n.Folder)
	if n.BodyPreview != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, n.BodyPreview)
	}
}

// FormatFolders formats folder names one per line.
func FormatFolders(w io.Writer, folders []string) {
	if len(folders) == 0 {
		fmt.Fprintln(w, "No folders found.")
		return
	}
	fmt.Fprintln(w, strings.Join(folders, "\n"))
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
