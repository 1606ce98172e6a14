// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists search records in a SQLite database.
// Implements: prd005-search-history (R1-R4);
//
//	docs/ARCHITECTURE § Search History.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/math-search/pkg/types"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds. Timestamps are
// compared as strings in SQL, so the fractional part must not vary in
// length.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the search history SQLite database.
type Store struct {
	db         *sql.DB
	maxDisplay int
}

// NewStore opens or creates the history database at cfg.DBPath and
// creates the schema if it does not exist (R1.4).
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = "math-search.db"
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxDisplay := cfg.MaxDisplay
	if maxDisplay <= 0 {
		maxDisplay = 20
	}

	s := &Store{db: db, maxDisplay: maxDisplay}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS search_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			keywords TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			results_count INTEGER NOT NULL DEFAULT 0,
			top_result_url TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_search_history_timestamp ON search_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_search_history_query ON search_history(query)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add validates and inserts a record, returning its new ID (R1.2, R1.3).
// A zero timestamp records the current time. Keywords are stored as a
// JSON array in a TEXT column.
func (s *Store) Add(ctx context.Context, rec types.SearchRecord) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	keywordsJSON, err := json.Marshal(rec.Keywords)
	if err != nil {
		return 0, fmt.Errorf("encoding keywords: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO search_history (query, keywords, timestamp, results_count, top_result_url)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Query, string(keywordsJSON), ts.UTC().Format(timeLayout),
		rec.ResultsCount, rec.TopResultURL,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert ID: %w", err)
	}
	return id, nil
}

// Get returns the record with the given ID, or nil when absent (R2.1).
func (s *Store) Get(ctx context.Context, id int64) (*types.SearchRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM search_history WHERE id = ?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record with the given ID and reports whether a
// record was removed (R3.1).
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM search_history WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

// DeleteOlderThan removes records older than the given number of days and
// returns how many were removed (R3.2).
func (s *Store) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, fmt.Errorf("retention days must be positive, got %d", days)
	}
	cutoff := time.Now().AddDate(0, 0, -days).UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx, `DELETE FROM search_history WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting old records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading rows affected: %w", err)
	}
	return n, nil
}

// Count returns the total number of records (R2.5).
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM search_history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
