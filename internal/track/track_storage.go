// track_storage.go implements SQLite-based persistent usage tracking.
//
// Separated from track.go to isolate database concerns. The main track.go
// provides the fluent API for building entries, while this file handles
// persistence. Using SQLite enables cross-project savings queries and
// structured filtering that plain text logs cannot provide. The project
// field uses a hash of the directory path to enable aggregation while
// preserving privacy.
//
// Design: Errors during recording are reported to stderr but otherwise
// ignored (best-effort). A grep whose results cannot be tracked must still
// print its report and exit zero.

package track

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// Tracker writes usage entries to a SQLite database.
type Tracker struct {
	db      *sql.DB
	project string
}

func (t *Tracker) record(e Entry) {
	success := 0
	if e.Success {
		success = 1
	}

	_, err := t.db.Exec(`
		INSERT INTO track (start, end, project, source, command,
		                   input_bytes, output_bytes, input_tokens, output_tokens,
		                   success, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, t.project, e.Source, nilIfEmpty(e.Command),
		e.InputBytes, e.OutputBytes, e.InputTokens, e.OutputTokens,
		success, nilIfEmpty(e.Error),
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "sift: usage tracking write failed: %v\n", err)
	}
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory if home cannot be determined.
		// This allows tracking to work in unusual environments (containers,
		// etc.) rather than silently failing.
		return filepath.Join(".sift", "track", "sift-track.db")
	}
	return filepath.Join(home, ".sift", "track", "sift-track.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the tracking database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path, enabling
// cross-project savings queries while preserving privacy.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		// Should never happen with nil key, but don't silently ignore
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the track table if it doesn't exist. Safe for concurrent access.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS track (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			start         INTEGER NOT NULL,
			end           INTEGER NOT NULL,
			project       TEXT NOT NULL,
			source        TEXT NOT NULL,
			command       TEXT,
			input_bytes   INTEGER NOT NULL,
			output_bytes  INTEGER NOT NULL,
			input_tokens  INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			success       INTEGER NOT NULL,
			error         TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_track_start ON track(start);
		CREATE INDEX IF NOT EXISTS idx_track_project ON track(project);
		CREATE INDEX IF NOT EXISTS idx_track_source ON track(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings, reducing NULL checks in queries.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
