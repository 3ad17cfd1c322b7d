// Package history persists classification results to a SQLite log. The
// engine itself keeps no durable state; games that want analytics or a
// "you asked me that before" memory record results here.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// Common errors
var (
	// ErrClosed is returned when using a closed log.
	ErrClosed = errors.New("history log is closed")

	// ErrNotInitialized is returned when Record or Recent run before Init.
	ErrNotInitialized = errors.New("history log is not initialized")
)

// Entry is one recorded classification.
type Entry struct {
	ID         string    `json:"id"`
	Input      string    `json:"input"`
	Normalized string    `json:"normalized"`
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LogError wraps errors with operation context.
type LogError struct {
	Op  string
	Err error
}

func (e *LogError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("history: %v", e.Err)
	}
	return fmt.Sprintf("history: %s: %v", e.Op, e.Err)
}

func (e *LogError) Unwrap() error { return e.Err }

func (e *LogError) Is(target error) bool { return errors.Is(e.Err, target) }

func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &LogError{Op: op, Err: err}
}

// Log is a SQLite-backed classification log.
type Log struct {
	path string

	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// New creates a Log for the given database path. Call Init before use.
func New(path string) (*Log, error) {
	if path == "" {
		return nil, wrapError("init", fmt.Errorf("database path cannot be empty"))
	}
	return &Log{path: path}, nil
}

// Init opens the database and creates the log table.
func (l *Log) Init(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return wrapError("init", ErrClosed)
	}

	db, err := sql.Open("sqlite", l.path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return wrapError("init", fmt.Errorf("failed to open database: %w", err))
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	schema := `
	CREATE TABLE IF NOT EXISTS classifications (
		id         TEXT PRIMARY KEY,
		input      TEXT NOT NULL,
		normalized TEXT NOT NULL,
		intent     TEXT NOT NULL,
		confidence REAL NOT NULL,
		source     TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_classifications_intent
		ON classifications(intent);
	CREATE INDEX IF NOT EXISTS idx_classifications_created_at
		ON classifications(created_at);
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return wrapError("init", fmt.Errorf("failed to create tables: %w", err))
	}

	l.db = db
	return nil
}

// Record inserts one classification and returns its generated ID.
func (l *Log) Record(ctx context.Context, e Entry) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return "", wrapError("record", ErrClosed)
	}
	if l.db == nil {
		return "", wrapError("record", ErrNotInitialized)
	}

	id := e.ID
	if id == "" {
		id = uuid.NewString()
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO classifications (id, input, normalized, intent, confidence, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, e.Input, e.Normalized, e.Intent, e.Confidence, e.Source, created.UnixMilli(),
	)
	if err != nil {
		return "", wrapError("record", err)
	}
	return id, nil
}

// Recent returns the newest entries, newest first, up to limit.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	return l.query(ctx,
		`SELECT id, input, normalized, intent, confidence, source, created_at
		 FROM classifications ORDER BY created_at DESC, id LIMIT ?`, limit)
}

// ByIntent returns the newest entries for one intent, newest first.
func (l *Log) ByIntent(ctx context.Context, intent string, limit int) ([]Entry, error) {
	return l.query(ctx,
		`SELECT id, input, normalized, intent, confidence, source, created_at
		 FROM classifications WHERE intent = ?
		 ORDER BY created_at DESC, id LIMIT ?`, intent, limit)
}

func (l *Log) query(ctx context.Context, q string, args ...interface{}) ([]Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, wrapError("query", ErrClosed)
	}
	if l.db == nil {
		return nil, wrapError("query", ErrNotInitialized)
	}

	rows, err := l.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapError("query", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdMs int64
		if err := rows.Scan(&e.ID, &e.Input, &e.Normalized, &e.Intent,
			&e.Confidence, &e.Source, &createdMs); err != nil {
			return nil, wrapError("query", err)
		}
		e.CreatedAt = time.UnixMilli(createdMs)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("query", err)
	}
	return entries, nil
}

// Count returns the total number of recorded classifications.
func (l *Log) Count(ctx context.Context) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return 0, wrapError("count", ErrClosed)
	}
	if l.db == nil {
		return 0, wrapError("count", ErrNotInitialized)
	}

	var n int64
	err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classifications`).Scan(&n)
	if err != nil {
		return 0, wrapError("count", err)
	}
	return n, nil
}

// Close closes the underlying database. The log cannot be reused after.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if l.db != nil {
		return wrapError("close", l.db.Close())
	}
	return nil
}
