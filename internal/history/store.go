// Package history persists completed scan results in a capped SQLite store
// and keeps an in-memory per-tab cache of the latest result.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"

	"github.com/ssudhiravinesh/blindsight/internal/severity"
)

// DefaultMaxEntries is the number of scan records kept before the oldest
// are evicted
const DefaultMaxEntries = 10

// Entry is one completed scan in the history
type Entry struct {
	// ID is the record identifier
	ID string `json:"id"`
	// Hostname is the scanned site's hostname with any www prefix stripped
	Hostname string `json:"hostname"`
	// URL is the full page URL that triggered the scan
	URL string `json:"url"`
	// Timestamp is when the scan completed
	Timestamp time.Time `json:"timestamp"`
	// Severity is the overall severity tier
	Severity severity.Level `json:"severity"`
	// Summary is the one-sentence analysis summary
	Summary string `json:"summary"`
	// ClauseCount is the number of flagged clauses
	ClauseCount int `json:"clauseCount"`
	// Category is the identified service category
	Category severity.ServiceCategory `json:"category"`
	// ServiceName is the identified service name, falling back to the hostname
	ServiceName string `json:"serviceName"`
}

// Store is a capped, newest-first scan history backed by SQLite
type Store struct {
	db  *sql.DB
	cap int
}

// NewStore opens (or creates) the history database at path. Use ":memory:"
// for an ephemeral store. maxEntries <= 0 selects DefaultMaxEntries.
func NewStore(path string, maxEntries int) (*Store, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db, cap: maxEntries}

	if err := s.initSchema(); err != nil {
		db.Close() //nolint:errcheck // already failing

		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scan_history (
		id TEXT PRIMARY KEY,
		hostname TEXT NOT NULL,
		url TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		severity INTEGER NOT NULL,
		summary TEXT NOT NULL DEFAULT '',
		clause_count INTEGER NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT 'unknown',
		service_name TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_scan_history_timestamp ON scan_history(timestamp);
	`

	_, err := s.db.Exec(schema)

	return err
}

// Add records a completed scan, evicting the oldest entries beyond the cap
func (s *Store) Add(ctx context.Context, entry Entry) (Entry, error) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if entry.Summary == "" {
		entry.Summary = "No summary available"
	}

	if entry.Category == "" {
		entry.Category = severity.ServiceUnknown
	}

	if entry.ServiceName == "" {
		entry.ServiceName = entry.Hostname
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("beginning history transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scan_history (id, hostname, url, timestamp, severity, summary, clause_count, category, service_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Hostname, entry.URL, entry.Timestamp, int(entry.Severity),
		entry.Summary, entry.ClauseCount, string(entry.Category), entry.ServiceName,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting history entry: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM scan_history WHERE id NOT IN (
			SELECT id FROM scan_history ORDER BY timestamp DESC, id DESC LIMIT ?
		)`, s.cap)
	if err != nil {
		return Entry{}, fmt.Errorf("evicting history entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("committing history transaction: %w", err)
	}

	log.Debug().Str("hostname", entry.Hostname).Int("severity", int(entry.Severity)).Msg("scan recorded in history")

	return entry, nil
}

// List returns all retained entries, newest first
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hostname, url, timestamp, severity, summary, clause_count, category, service_name
		FROM scan_history ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	entries := []Entry{}

	for rows.Next() {
		var (
			e        Entry
			sev      int
			category string
		)

		if err := rows.Scan(&e.ID, &e.Hostname, &e.URL, &e.Timestamp, &sev, &e.Summary, &e.ClauseCount, &category, &e.ServiceName); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}

		e.Severity = severity.Clamp(sev)
		e.Category = severity.ServiceCategory(category)

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Clear removes all history entries
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scan_history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	return nil
}
