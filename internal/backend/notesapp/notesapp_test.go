package notesapp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
)

func stubClient(fn runner) *Client {
	return &Client{run: fn, log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestListDecodesScriptOutput(t *testing.T) {
	var gotScript string
	var gotArgs []string
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		gotScript = script
		gotArgs = args
		return []byte(`[
			{"id": "x-coredata://abc/ICNote/p1", "name": "Test Note 1", "plaintext": "body one"},
			{"id": "x-coredata://abc/ICNote/p2", "name": "Test Note 2", "plaintext": "body two"}
		]`), nil
	})

	recs, err := c.List(context.Background(), 10, "Personal")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotScript != listScript {
		t.Error("wrong script executed")
	}
	if len(gotArgs) != 2 || gotArgs[0] != "10" || gotArgs[1] != "Personal" {
		t.Errorf("script args = %v", gotArgs)
	}
	if len(recs) != 2 || recs[0].ID != "x-coredata://abc/ICNote/p1" || recs[1].Title != "Test Note 2" {
		t.Errorf("decoded records = %+v", recs)
	}
}

func TestGetByIDsPassesIDSet(t *testing.T) {
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		if script != getScript {
			t.Error("wrong script executed")
		}
		var ids []string
		if err := json.Unmarshal([]byte(args[0]), &ids); err != nil {
			t.Fatalf("ids argument not JSON: %v", err)
		}
		if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
			t.Errorf("ids = %v", ids)
		}
		return []byte(`[{
			"id": "p1",
			"name": "Found",
			"body": "<div>html</div>",
			"plaintext": "html",
			"creationDate": "2025-01-01T10:00:00.000Z",
			"modificationDate": "2025-01-01T10:30:00.000Z",
			"folder": "Notes",
			"account": "iCloud",
			"passwordProtected": true
		}]`), nil
	})

	recs, err := c.GetByIDs(context.Background(), []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Body != "<div>html</div>" || r.Folder != "Notes" || r.Account != "iCloud" || !r.PasswordProtected {
		t.Errorf("record = %+v", r)
	}
	if r.CreationDate != "2025-01-01T10:00:00.000Z" {
		t.Errorf("raw creation date altered: %q", r.CreationDate)
	}
}

func TestNumericIDCoercion(t *testing.T) {
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		return []byte(`[{"id": 2436, "name": "Numeric"}]`), nil
	})

	recs, err := c.List(context.Background(), 0, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if recs[0].ID != "2436" {
		t.Errorf("id = %q, want \"2436\"", recs[0].ID)
	}
}

func TestCreatePassesArguments(t *testing.T) {
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		if script != createScript {
			t.Error("wrong script executed")
		}
		if args[0] != "My Note" || args[1] != "<h1>My Note</h1>" || args[2] != "Work" {
			t.Errorf("create args = %v", args)
		}
		return []byte(`{"id": "p999", "name": "My Note", "plaintext": "My Note", "creationDate": "2025-01-15T14:00:00.000Z", "folder": "Work", "account": "iCloud"}`), nil
	})

	rec, err := c.Create(context.Background(), "My Note", "<h1>My Note</h1>", "Work")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID != "p999" || rec.Folder != "Work" {
		t.Errorf("created record = %+v", rec)
	}
}

func TestCreatePassesConfiguredAccount(t *testing.T) {
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		if len(args) < 4 || args[3] != "Work Account" {
			t.Errorf("account arg missing: %v", args)
		}
		return []byte(`{"id": "p1", "name": "Note", "plaintext": ""}`), nil
	})
	c.account = "Work Account"

	if _, err := c.Create(context.Background(), "Note", "<p></p>", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestFolders(t *testing.T) {
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		return []byte(`["Notes", "Personal", "Work"]`), nil
	})

	names, err := c.Folders(context.Background())
	if err != nil {
		t.Fatalf("Folders: %v", err)
	}
	if len(names) != 3 || names[2] != "Work" {
		t.Errorf("folders = %v", names)
	}
}

func TestSearchTagUnsupported(t *testing.T) {
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		t.Fatal("no script should run for tag search")
		return nil, nil
	})

	if _, err := c.SearchTag(context.Background(), "work"); !errors.Is(err, backend.ErrUnsupported) {
		t.Errorf("SearchTag error = %v, want ErrUnsupported", err)
	}
}

func TestRunnerErrorPropagates(t *testing.T) {
	scriptErr := errors.New("execution error: Not authorized to send Apple events to Notes")
	c := stubClient(func(ctx context.Context, script string, args ...string) ([]byte, error) {
		return nil, scriptErr
	})

	if _, err := c.List(context.Background(), 0, ""); !errors.Is(err, scriptErr) {
		t.Errorf("List error = %v, want wrapped runner error", err)
	}
}
