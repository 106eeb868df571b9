package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
)

func TestListNotesClampsLimit(t *testing.T) {
	src := &fakeSource{name: "parser", listRecs: sampleRecords(5)}
	svc := newService(src)

	refs := svc.ListNotes(context.Background(), 0, "")
	if len(refs) != 1 {
		t.Errorf("limit 0 should clamp to 1, got %d refs", len(refs))
	}

	refs = svc.ListNotes(context.Background(), -3, "")
	if len(refs) != 1 {
		t.Errorf("negative limit should clamp to 1, got %d refs", len(refs))
	}

	refs = svc.ListNotes(context.Background(), 5000, "")
	if len(refs) != 5 {
		t.Errorf("oversized limit should pass clamped, got %d refs", len(refs))
	}
}

func TestListNotesSentinels(t *testing.T) {
	src := &fakeSource{name: "parser", listRecs: []backend.Record{
		{ID: "2436", Title: ""},
		{ID: "", Title: "Valid Note"},
	}}
	svc := newService(src)

	refs := svc.ListNotes(context.Background(), 10, "")
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Title != "Untitled" {
		t.Errorf("empty title = %q, want Untitled", refs[0].Title)
	}
	if refs[0].ID != "2436" {
		t.Errorf("id = %q, want 2436", refs[0].ID)
	}
	if refs[1].ID != "unknown" {
		t.Errorf("missing id = %q, want unknown", refs[1].ID)
	}
}

func TestListNotesFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &fakeSource{name: "parser", listErr: errors.New("database locked")}
	secondary := &fakeSource{name: "notesapp", listRecs: sampleRecords(2)}
	svc := newService(primary, secondary)

	refs := svc.ListNotes(context.Background(), 10, "")
	if len(refs) != 2 {
		t.Fatalf("expected fallback results, got %d refs", len(refs))
	}
	if primary.listCalls != 1 || secondary.listCalls != 1 {
		t.Errorf("call counts: primary %d, secondary %d", primary.listCalls, secondary.listCalls)
	}
}

func TestListNotesEmptyWhenAllBackendsFail(t *testing.T) {
	primary := &fakeSource{name: "parser", listErr: backend.ErrUnavailable}
	secondary := &fakeSource{name: "notesapp", listErr: errors.New("not authorized")}
	svc := newService(primary, secondary)

	refs := svc.ListNotes(context.Background(), 10, "")
	if refs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(refs) != 0 {
		t.Errorf("expected 0 refs, got %d", len(refs))
	}
}

func TestListNotesPassesFolder(t *testing.T) {
	src := &fakeSource{name: "parser", listRecs: sampleRecords(1)}
	svc := newService(src)

	svc.ListNotes(context.Background(), 10, "Work")
	if src.lastFolder != "Work" {
		t.Errorf("folder = %q, want Work", src.lastFolder)
	}
}

func TestListNotesSuccessfulEmptyDoesNotFallBack(t *testing.T) {
	primary := &fakeSource{name: "parser"}
	secondary := &fakeSource{name: "notesapp", listRecs: sampleRecords(3)}
	svc := newService(primary, secondary)

	refs := svc.ListNotes(context.Background(), 10, "")
	if len(refs) != 0 {
		t.Errorf("expected primary's empty result, got %d refs", len(refs))
	}
	if secondary.listCalls != 0 {
		t.Error("secondary should not be consulted after a successful empty list")
	}
}
