package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	"github.com/lowkeylabs/applenotes-mcp/internal/service"
)

// cannedSource serves fixed records for command tests.
type cannedSource struct {
	recs []backend.Record
}

func (c *cannedSource) Name() string { return "canned" }

func (c *cannedSource) List(ctx context.Context, limit int, folder string) ([]backend.Record, error) {
	if limit > 0 && len(c.recs) > limit {
		return c.recs[:limit], nil
	}
	return c.recs, nil
}

func (c *cannedSource) GetByIDs(ctx context.Context, ids []string) ([]backend.Record, error) {
	var out []backend.Record
	for _, id := range ids {
		for _, r := range c.recs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (c *cannedSource) Search(ctx context.Context, query string, kind backend.SearchKind, folder string) ([]backend.Record, error) {
	return c.recs, nil
}

func (c *cannedSource) SearchTag(ctx context.Context, tag string) ([]backend.Record, error) {
	return nil, backend.ErrUnsupported
}

func (c *cannedSource) Create(ctx context.Context, title, htmlBody, folder string) (backend.Record, error) {
	return backend.Record{ID: "new1", Title: title, Folder: folder}, nil
}

func (c *cannedSource) Folders(ctx context.Context) ([]string, error) {
	return []string{"Notes", "Work"}, nil
}

// setupTestService points the package-level service at canned data and
// restores the previous state afterwards.
func setupTestService(t *testing.T, recs []backend.Record) {
	t.Helper()
	prev := svc
	svc = service.New(slog.New(slog.NewTextHandler(io.Discard, nil)), &cannedSource{recs: recs})
	t.Cleanup(func() { svc = prev })
}

// runCommand invokes a command's RunE with captured output.
func runCommand(t *testing.T, c *cobra.Command, args []string) string {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetContext(context.Background())
	if err := c.RunE(c, args); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	return buf.String()
}
