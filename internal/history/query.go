// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/math-search/pkg/types"
)

const selectColumns = `id, query, keywords, timestamp, results_count, top_result_url`

// List returns records newest first (R2.2). A non-positive limit uses the
// store default; offset skips past records for paging.
func (s *Store) List(ctx context.Context, limit, offset int) ([]types.SearchRecord, error) {
	if limit <= 0 {
		limit = s.maxDisplay
	}
	if offset < 0 {
		offset = 0
	}
	return s.queryRecords(ctx,
		`SELECT `+selectColumns+` FROM search_history
		 ORDER BY timestamp DESC, id DESC LIMIT ? OFFSET ?`, limit, offset)
}

// Recent returns records from the last given number of days, newest
// first (R2.3). Non-positive arguments fall back to 7 days and 50 records.
func (s *Store) Recent(ctx context.Context, days, limit int) ([]types.SearchRecord, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 {
		limit = 50
	}
	cutoff := time.Now().AddDate(0, 0, -days).UTC().Format(timeLayout)
	return s.queryRecords(ctx,
		`SELECT `+selectColumns+` FROM search_history
		 WHERE timestamp >= ? ORDER BY timestamp DESC, id DESC LIMIT ?`, cutoff, limit)
}

// SearchByQuery returns records whose query text contains the given
// substring, newest first (R2.4).
func (s *Store) SearchByQuery(ctx context.Context, text string, limit int) ([]types.SearchRecord, error) {
	if limit <= 0 {
		limit = s.maxDisplay
	}
	return s.queryRecords(ctx,
		`SELECT `+selectColumns+` FROM search_history
		 WHERE query LIKE ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		"%"+text+"%", limit)
}

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]types.SearchRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.SearchRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (types.SearchRecord, error) {
	var (
		rec          types.SearchRecord
		keywordsJSON string
		ts           string
		topURL       sql.NullString
	)
	if err := row.Scan(&rec.ID, &rec.Query, &keywordsJSON, &ts, &rec.ResultsCount, &topURL); err != nil {
		return types.SearchRecord{}, err
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &rec.Keywords); err != nil {
		return types.SearchRecord{}, fmt.Errorf("decoding keywords: %w", err)
	}
	t, err := time.Parse(timeLayout, ts)
	if err != nil {
		return types.SearchRecord{}, fmt.Errorf("parsing timestamp %q: %w", ts, err)
	}
	rec.Timestamp = t
	rec.TopResultURL = topURL.String
	return rec, nil
}

// FormatRecords writes records as a table to w (R2.6).
func FormatRecords(records []types.SearchRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No history records.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-19s  %s\n", "ID", "When", "Search")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, rec := range records {
		fmt.Fprintf(w, "%-6d  %-19s  %s\n",
			rec.ID, rec.Timestamp.Local().Format("2006-01-02 15:04:05"), rec.Summary())
	}
	fmt.Fprintf(w, "\n%d records\n", len(records))
}
