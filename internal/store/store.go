package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/israyx/sintrade/internal/gateway"
)

const schema = `
CREATE TABLE IF NOT EXISTS request_events (
	id         TEXT PRIMARY KEY,
	purpose    TEXT NOT NULL,
	model      TEXT NOT NULL,
	latency_ms INTEGER NOT NULL,
	success    INTEGER NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_request_events_created_at ON request_events(created_at);
`

// RequestRecord is one persisted transport call.
type RequestRecord struct {
	ID        string
	Purpose   string
	Model     string
	LatencyMs int64
	Success   bool
	Error     string
	CreatedAt time.Time
}

// Store is a sqlite-backed audit log for gateway requests.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The driver serializes writes; a single connection avoids
	// SQLITE_BUSY on concurrent appends.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// AppendRequest records one gateway transport call.
func (s *Store) AppendRequest(ctx context.Context, ev gateway.RequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO request_events (id, purpose, model, latency_ms, success, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), ev.Purpose, ev.Model, ev.LatencyMs, ev.Success, ev.Error, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert request event: %w", err)
	}
	return nil
}

// RecentRequests returns the newest events, most recent first.
func (s *Store) RecentRequests(ctx context.Context, limit int) ([]RequestRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, purpose, model, latency_ms, success, error, created_at
		 FROM request_events ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}
	defer rows.Close()

	var records []RequestRecord
	for rows.Next() {
		var r RequestRecord
		if err := rows.Scan(&r.ID, &r.Purpose, &r.Model, &r.LatencyMs, &r.Success, &r.Error, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan request event: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
