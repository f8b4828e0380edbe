// Package analytics counts page views and CV downloads without keeping
// raw visitor addresses.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Kind classifies a recorded visit.
type Kind string

const (
	KindPage     Kind = "page"
	KindDownload Kind = "download"
)

// Visit is one recorded request. HashedIP is never the raw address.
type Visit struct {
	ID        int64
	HashedIP  string
	UserAgent string
	Path      string
	Kind      Kind
	Lang      string
	Timestamp time.Time
}

// Summary aggregates the visits table.
type Summary struct {
	TotalVisits    int64
	UniqueVisitors int64
	PageViews      int64
	Downloads      int64
	VisitsToday    int64
}

// Store wraps the visits database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('page','download')),
	lang TEXT NOT NULL DEFAULT '',
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
`

// Open opens the database behind dsn and creates the schema. The
// default DSN is an in-memory shared-cache database, so nothing outlives
// the process.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening analytics database: %w", err)
	}
	// An in-memory database lives as long as one connection does.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging analytics database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating analytics schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one visit.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if v.Timestamp.IsZero() {
		v.Timestamp = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, kind, lang, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, string(v.Kind), v.Lang, v.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// Summary computes the aggregate counters. now anchors "today".
func (s *Store) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	sum := &Summary{}
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT hashed_ip),
			COALESCE(SUM(kind = 'page'), 0),
			COALESCE(SUM(kind = 'download'), 0)
		FROM visits
	`).Scan(&sum.TotalVisits, &sum.UniqueVisitors, &sum.PageViews, &sum.Downloads)
	if err != nil {
		return nil, fmt.Errorf("summarising visits: %w", err)
	}

	day := now.UTC().Truncate(24 * time.Hour)
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE timestamp >= ?`, day,
	).Scan(&sum.VisitsToday)
	if err != nil {
		return nil, fmt.Errorf("counting today's visits: %w", err)
	}
	return sum, nil
}

// Recent returns the latest visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, kind, lang, timestamp
		FROM visits
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var kind string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &kind, &v.Lang, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning visit: %w", err)
		}
		v.Kind = Kind(kind)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// Prune deletes visits older than cutoff and returns how many went.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE timestamp < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("pruning visits: %w", err)
	}
	return res.RowsAffected()
}
