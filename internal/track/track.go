// Package track provides centralised usage tracking for sift operations.
// Entries are stored in ~/.sift/track/sift-track.db and record, per
// invocation, how much raw tool output went in and how much condensed
// report came out - in bytes and (optionally) in tokens.
//
// # Fluent API
//
// Use the fluent builder API to construct and write entries:
//
//	track.Event("cli:grep", "grep -rn 'TODO' .").
//		Input(rawOutput).
//		Output(report).
//		Write(err)
//
// The source parameter follows the format "cli:{command}" for CLI commands
// or "mcp:{tool}" for MCP tools. The command parameter is the equivalent
// shell command the invocation replaced, which is what makes savings
// comparisons meaningful.
//
// Tracking is strictly fire-and-forget: Open failures are reported as
// warnings by the caller, Write failures go to stderr, and neither ever
// affects the outcome of the command being tracked.
package track

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	mu     sync.Mutex
	global *Tracker
)

// Entry represents a single usage-tracking record.
type Entry struct {
	Source  string // e.g., "cli:grep", "mcp:json"
	Command string // equivalent shell command, e.g., "grep -rn 'TODO' ."

	// Payload sizes - captured at Write time from the builder's texts.
	InputBytes   int // raw collaborator output handed to the summariser
	OutputBytes  int // rendered report actually shown
	InputTokens  int // tokenized size of the raw input (0 when disabled)
	OutputTokens int // tokenized size of the rendered output (0 when disabled)

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string
}

// Builder constructs a tracking entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write].
type Builder struct {
	entry  Entry
	input  string
	output string
}

// Event creates a new tracking entry builder for an operation.
//
// The source identifies where the operation originated ("cli:grep",
// "mcp:json"); the command is the shell equivalent the operation replaced.
func Event(source, command string) *Builder {
	return &Builder{
		entry: Entry{
			Source:  source,
			Command: command,
			Start:   time.Now().Unix(),
		},
	}
}

// Input attaches the raw input text. Only its size and token count are
// persisted; the text itself is never written to the database.
func (b *Builder) Input(text string) *Builder {
	b.input = text
	return b
}

// Output attaches the rendered report text. As with Input, only sizes and
// token counts are persisted.
func (b *Builder) Output(text string) *Builder {
	b.output = text
	return b
}

// Write completes the entry and records it, deriving success/failure from
// err. Token counts are computed here so failed operations (which usually
// carry no payload) skip the tokenizer entirely.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	b.entry.InputBytes = len(b.input)
	b.entry.OutputBytes = len(b.output)
	b.entry.InputTokens = countTokens(b.input)
	b.entry.OutputTokens = countTokens(b.output)
	Record(b.entry)
}

// Open initialises the global tracker. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort tracking).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Tracker{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries.
// The dir should be the working directory the command ran in.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Record writes an entry. Safe to call if the tracker is not initialised (no-op).
func Record(e Entry) {
	mu.Lock()
	t := global
	mu.Unlock()

	if t == nil {
		return
	}
	t.record(e)
}

// Close closes the global tracker.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
