// Package parser is the fast read path: it opens the Notes.app SQLite store
// (NoteStore.sqlite) read-only and projects its Core Data rows into backend
// records. It can list, search and resolve hashtags, but it cannot write.
package parser

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lowkeylabs/applenotes-mcp/internal/backend"
	_ "github.com/tursodatabase/go-libsql"
)

// Core Data stores timestamps as seconds since 2001-01-01 UTC.
const appleEpochOffset int64 = 978307200

const inlineTagUTI = "com.apple.notes.inlinetexttag"

// The folder-to-account foreign key column has been renamed across macOS
// releases. Probed at query time, newest first.
var accountFKColumns = []string{"ZACCOUNT8", "ZACCOUNT7", "ZACCOUNT4", "ZACCOUNT3", "ZACCOUNT2", "ZACCOUNT"}

// Store reads the Notes database. Each call opens and closes its own
// connection; no state survives between calls.
type Store struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *Store {
	return &Store{path: path, log: log}
}

func (s *Store) Name() string { return "parser" }

func (s *Store) open() (*sql.DB, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: notes database not found at %s", backend.ErrUnavailable, s.path)
	}
	db, err := sql.Open("libsql", "file:"+s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening notes database: %v", backend.ErrUnavailable, err)
	}
	return db, nil
}

// snapshot loads every non-deleted note with resolved folder, account and
// body text. The primary-key index of each record is returned alongside so
// tag lookups can join back to notes.
func (s *Store) snapshot(ctx context.Context, db *sql.DB) ([]backend.Record, map[int64]int, error) {
	acctCol, err := accountColumn(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("probing notes schema: %w", err)
	}

	acctJoin := "NULL"
	if acctCol != "" {
		acctJoin = "a.ZNAME"
	}
	q := fmt.Sprintf(`
		SELECT n.Z_PK, n.ZTITLE1, n.ZSNIPPET, n.ZCREATIONDATE1, n.ZMODIFICATIONDATE1,
		       COALESCE(n.ZISPASSWORDPROTECTED, 0), f.ZTITLE2, %s, d.ZDATA
		FROM ZICCLOUDSYNCINGOBJECT n
		JOIN Z_PRIMARYKEY pk ON n.Z_ENT = pk.Z_ENT AND pk.Z_NAME = 'ICNote'
		LEFT JOIN ZICCLOUDSYNCINGOBJECT f ON n.ZFOLDER = f.Z_PK
		LEFT JOIN ZICNOTEDATA d ON d.ZNOTE = n.Z_PK
		WHERE COALESCE(n.ZMARKEDFORDELETION, 0) = 0
		ORDER BY n.ZMODIFICATIONDATE1 DESC`, acctJoin)
	if acctCol != "" {
		q = strings.Replace(q,
			"LEFT JOIN ZICNOTEDATA",
			fmt.Sprintf("LEFT JOIN ZICCLOUDSYNCINGOBJECT a ON f.%s = a.Z_PK\n\t\tLEFT JOIN ZICNOTEDATA", acctCol),
			1)
	}

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var recs []backend.Record
	index := make(map[int64]int)
	for rows.Next() {
		var (
			pk                int64
			title, snippet    sql.NullString
			created, modified sql.NullFloat64
			locked            int64
			folder, account   sql.NullString
			data              []byte
		)
		if err := rows.Scan(&pk, &title, &snippet, &created, &modified, &locked, &folder, &account, &data); err != nil {
			s.log.Warn("skipping unreadable note row", "error", err)
			continue
		}

		plaintext := snippet.String
		if len(data) > 0 {
			if text := plaintextFromArchive(data); text != "" {
				plaintext = text
			}
		}

		index[pk] = len(recs)
		recs = append(recs, backend.Record{
			ID:                strconv.FormatInt(pk, 10),
			Title:             title.String,
			Plaintext:         plaintext,
			CreationDate:      appleTime(created),
			ModificationDate:  appleTime(modified),
			Account:           account.String,
			Folder:            folder.String,
			PasswordProtected: locked != 0,
		})
	}
	return recs, index, rows.Err()
}

// List loads the full snapshot, filters by folder if given and truncates.
func (s *Store) List(ctx context.Context, limit int, folder string) ([]backend.Record, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	recs, _, err := s.snapshot(ctx, db)
	if err != nil {
		return nil, err
	}
	recs = filterFolder(recs, folder)
	return head(recs, limit), nil
}

// Search scans the snapshot for a case-insensitive substring match against
// the requested field.
func (s *Store) Search(ctx context.Context, query string, kind backend.SearchKind, folder string) ([]backend.Record, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	recs, _, err := s.snapshot(ctx, db)
	if err != nil {
		return nil, err
	}
	recs = filterFolder(recs, folder)

	q := strings.ToLower(query)
	var out []backend.Record
	for _, r := range recs {
		var haystack string
		if kind == backend.SearchName {
			haystack = r.Title
		} else {
			haystack = r.Title + "\n" + r.Plaintext
		}
		if strings.Contains(strings.ToLower(haystack), q) {
			out = append(out, r)
		}
	}
	return out, nil
}

// SearchTag matches inline hashtag attachments against tag. Matching is
// whole-tag and case-insensitive: "#Work" and "#work" are the same tag,
// "#workout" is not.
func (s *Store) SearchTag(ctx context.Context, tag string) ([]backend.Record, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	recs, index, err := s.snapshot(ctx, db)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT t.ZALTTEXT, t.ZNOTE1
		FROM ZICCLOUDSYNCINGOBJECT t
		WHERE t.ZTYPEUTI1 = ? AND t.ZALTTEXT IS NOT NULL AND t.ZNOTE1 IS NOT NULL`,
		inlineTagUTI)
	if err != nil {
		return nil, fmt.Errorf("querying hashtags: %w", err)
	}
	defer rows.Close()

	seen := make(map[int64]bool)
	var out []backend.Record
	for rows.Next() {
		var alt string
		var notePK int64
		if err := rows.Scan(&alt, &notePK); err != nil {
			continue
		}
		if !strings.EqualFold(strings.TrimPrefix(alt, "#"), tag) {
			continue
		}
		if i, ok := index[notePK]; ok && !seen[notePK] {
			seen[notePK] = true
			out = append(out, recs[i])
		}
	}
	return out, rows.Err()
}

// Folders returns all folder names known to the database.
func (s *Store) Folders(ctx context.Context) ([]string, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT f.ZTITLE2
		FROM ZICCLOUDSYNCINGOBJECT f
		JOIN Z_PRIMARYKEY pk ON f.Z_ENT = pk.Z_ENT AND pk.Z_NAME = 'ICFolder'
		WHERE f.ZTITLE2 IS NOT NULL AND COALESCE(f.ZMARKEDFORDELETION, 0) = 0
		ORDER BY f.ZTITLE2`)
	if err != nil {
		return nil, fmt.Errorf("querying folders: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetByIDs is unsupported: full-body retrieval by AppleScript id belongs to
// the live scripting path.
func (s *Store) GetByIDs(ctx context.Context, ids []string) ([]backend.Record, error) {
	return nil, backend.ErrUnsupported
}

// Create is unsupported: the database is opened read-only.
func (s *Store) Create(ctx context.Context, title, htmlBody, folder string) (backend.Record, error) {
	return backend.Record{}, backend.ErrUnsupported
}

func accountColumn(ctx context.Context, db *sql.DB) (string, error) {
	rows, err := db.QueryContext(ctx, "PRAGMA table_info(ZICCLOUDSYNCINGOBJECT)")
	if err != nil {
		return "", err
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pkcol int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pkcol); err != nil {
			return "", err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	for _, col := range accountFKColumns {
		if present[col] {
			return col, nil
		}
	}
	return "", nil
}

func appleTime(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return time.Unix(appleEpochOffset+int64(v.Float64), 0).UTC().Format(time.RFC3339)
}

// filterFolder keeps notes whose resolved folder name contains the filter,
// case-insensitively. Notes whose folder could not be resolved are skipped
// only when a filter is in effect.
func filterFolder(recs []backend.Record, folder string) []backend.Record {
	if folder == "" {
		return recs
	}
	want := strings.ToLower(folder)
	var out []backend.Record
	for _, r := range recs {
		if r.Folder == "" {
			continue
		}
		if strings.Contains(strings.ToLower(r.Folder), want) {
			out = append(out, r)
		}
	}
	return out
}

func head(recs []backend.Record, limit int) []backend.Record {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
