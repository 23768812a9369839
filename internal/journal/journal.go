// Package journal persists the demo's dialog notifications to sqlite so a
// session's open/close history can be inspected after the TUI exits. Only
// the notification stream is recorded; dialog state itself is never
// persisted or restored.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Journal wraps the database connection.
type Journal struct {
	conn *sql.DB
}

// Entry is one recorded dialog notification.
type Entry struct {
	ID        int64
	DialogID  string
	Event     string
	Modal     bool
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS dialog_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	dialog_id   TEXT NOT NULL,
	event       TEXT NOT NULL,
	modal       INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_dialog_events_created ON dialog_events(created_at);
`

// Open opens (creating if necessary) the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	// WAL keeps reads cheap while the demo writes from its update loop
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}

	return &Journal{conn: conn}, nil
}

// Record appends one notification to the journal.
func (j *Journal) Record(dialogID, event string, modal bool) error {
	_, err := j.conn.Exec(
		"INSERT INTO dialog_events (dialog_id, event, modal) VALUES (?, ?, ?)",
		dialogID, event, modal,
	)
	if err != nil {
		return fmt.Errorf("record dialog event: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	rows, err := j.conn.Query(
		"SELECT id, dialog_id, event, modal, created_at FROM dialog_events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query dialog events: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.DialogID, &e.Event, &e.Modal, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dialog event: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.conn.Close()
}
