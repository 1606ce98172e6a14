// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math"
	"time"
)

// Stats summarizes the history store (R2.5).
type Stats struct {
	Total      int       `json:"total" yaml:"total"`
	RecentWeek int       `json:"recent_week" yaml:"recent_week"`
	AvgResults float64   `json:"avg_results" yaml:"avg_results"`
	Earliest   time.Time `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest     time.Time `json:"latest,omitempty" yaml:"latest,omitempty"`
}

// Stats aggregates the record count, the 7-day count, the mean result
// count rounded to two decimals, and the record time span (R2.5).
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	total, err := s.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.Total = total

	cutoff := time.Now().AddDate(0, 0, -7).UTC().Format(timeLayout)
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM search_history WHERE timestamp >= ?`, cutoff).Scan(&st.RecentWeek); err != nil {
		return Stats{}, fmt.Errorf("counting recent records: %w", err)
	}

	var avg sql.NullFloat64
	if err := s.db.QueryRowContext(ctx,
		`SELECT AVG(results_count) FROM search_history`).Scan(&avg); err != nil {
		return Stats{}, fmt.Errorf("averaging result counts: %w", err)
	}
	if avg.Valid {
		st.AvgResults = math.Round(avg.Float64*100) / 100
	}

	var earliest, latest sql.NullString
	if err := s.db.QueryRowContext(ctx,
		`SELECT MIN(timestamp), MAX(timestamp) FROM search_history`).Scan(&earliest, &latest); err != nil {
		return Stats{}, fmt.Errorf("reading record span: %w", err)
	}
	if earliest.Valid {
		t, err := time.Parse(timeLayout, earliest.String)
		if err != nil {
			return Stats{}, fmt.Errorf("parsing earliest timestamp: %w", err)
		}
		st.Earliest = t
	}
	if latest.Valid {
		t, err := time.Parse(timeLayout, latest.String)
		if err != nil {
			return Stats{}, fmt.Errorf("parsing latest timestamp: %w", err)
		}
		st.Latest = t
	}
	return st, nil
}

// FormatStats writes the summary to w.
func FormatStats(st Stats, w io.Writer) {
	fmt.Fprintf(w, "total searches:  %d\n", st.Total)
	fmt.Fprintf(w, "last 7 days:     %d\n", st.RecentWeek)
	fmt.Fprintf(w, "avg results:     %.2f\n", st.AvgResults)
	if !st.Earliest.IsZero() {
		fmt.Fprintf(w, "earliest record: %s\n", st.Earliest.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "latest record:   %s\n", st.Latest.Local().Format("2006-01-02 15:04:05"))
	}
}
