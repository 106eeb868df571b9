// Package notesapp is the live scripting path: it drives Notes.app through
// osascript (JXA) subprocesses. It is slower than the parser but it is the
// only backend that can create notes or fetch full bodies by AppleScript id.
package notesapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
)

// runner executes a JXA script and returns its stdout. Tests substitute a
// stub so no subprocess is spawned.
type runner func(ctx context.Context, script string, args ...string) ([]byte, error)

// Client drives Notes.app. One osascript subprocess per call, no state held.
// account names the account new notes land in; empty means the default
// account.
type Client struct {
	run     runner
	log     *slog.Logger
	account string
}

func New(log *slog.Logger, account string) *Client {
	return &Client{run: runOsascript, log: log, account: account}
}

func (c *Client) Name() string { return "notesapp" }

// scriptNote is the JSON shape every script emits per note.
type scriptNote struct {
	ID                any    `json:"id"`
	Name              string `json:"name"`
	Body              string `json:"body"`
	Plaintext         string `json:"plaintext"`
	CreationDate      string `json:"creationDate"`
	ModificationDate  string `json:"modificationDate"`
	Folder            string `json:"folder"`
	Account           string `json:"account"`
	PasswordProtected bool   `json:"passwordProtected"`
}

func (n scriptNote) toRecord() backend.Record {
	return backend.Record{
		ID:                coerceID(n.ID),
		Title:             n.Name,
		Body:              n.Body,
		Plaintext:         n.Plaintext,
		CreationDate:      n.CreationDate,
		ModificationDate:  n.ModificationDate,
		Account:           n.Account,
		Folder:            n.Folder,
		PasswordProtected: n.PasswordProtected,
	}
}

// coerceID normalizes whatever the scripting bridge returned for an id into
// a string. Core Data ids come back numeric from some macOS versions.
func coerceID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case json.Number:
		return id.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", id)
	}
}

func (c *Client) List(ctx context.Context, limit int, folder string) ([]backend.Record, error) {
	out, err := c.run(ctx, listScript, strconv.Itoa(limit), folder)
	if err != nil {
		return nil, err
	}
	return decodeNotes(out)
}

func (c *Client) GetByIDs(ctx context.Context, ids []string) ([]backend.Record, error) {
	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encoding note ids: %w", err)
	}
	out, err := c.run(ctx, getScript, string(encoded))
	if err != nil {
		return nil, err
	}
	return decodeNotes(out)
}

func (c *Client) Search(ctx context.Context, query string, kind backend.SearchKind, folder string) ([]backend.Record, error) {
	out, err := c.run(ctx, searchScript, query, string(kind), folder)
	if err != nil {
		return nil, err
	}
	return decodeNotes(out)
}

// SearchTag is unsupported: the scripting bridge has no hashtag index, so
// tag lookups belong to the parser.
func (c *Client) SearchTag(ctx context.Context, tag string) ([]backend.Record, error) {
	return nil, backend.ErrUnsupported
}

func (c *Client) Create(ctx context.Context, title, htmlBody, folder string) (backend.Record, error) {
	out, err := c.run(ctx, createScript, title, htmlBody, folder, c.account)
	if err != nil {
		return backend.Record{}, err
	}
	var n scriptNote
	if err := json.Unmarshal(bytes.TrimSpace(out), &n); err != nil {
		return backend.Record{}, fmt.Errorf("decoding created note: %w", err)
	}
	return n.toRecord(), nil
}

func (c *Client) Folders(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, foldersScript)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(bytes.TrimSpace(out), &names); err != nil {
		return nil, fmt.Errorf("decoding folder list: %w", err)
	}
	return names, nil
}

func decodeNotes(out []byte) ([]backend.Record, error) {
	var raw []scriptNote
	if err := json.Unmarshal(bytes.TrimSpace(out), &raw); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	recs := make([]backend.Record, 0, len(raw))
	for _, n := range raw {
		recs = append(recs, n.toRecord())
	}
	return recs, nil
}

func runOsascript(ctx context.Context, script string, args ...string) ([]byte, error) {
	path, err := exec.LookPath("osascript")
	if err != nil {
		return nil, fmt.Errorf("%w: osascript not found; Notes.app scripting requires macOS with Automation permission for this process", backend.ErrUnavailable)
	}

	cmdArgs := append([]string{"-l", "JavaScript", "-e", script}, args...)
	cmd := exec.CommandContext(ctx, path, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("osascript: %s", msg)
	}
	return stdout.Bytes(), nil
}
