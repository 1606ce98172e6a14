// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
	"time"
)

// SearchRecord is one entry in the search history store
// (prd005-search-history R1.1).
type SearchRecord struct {
	// ID is the database row ID. Zero for records not yet persisted.
	ID int64 `json:"id" yaml:"id"`

	// Query is the original query text the user searched for. Never empty.
	Query string `json:"query" yaml:"query"`

	// Keywords are the generated search keywords used for the query.
	// Never empty.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Timestamp records when the search ran.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// ResultsCount is the number of results the search returned.
	ResultsCount int `json:"results_count" yaml:"results_count"`

	// TopResultURL is the URL of the highest-ranked result, when the
	// search returned any.
	TopResultURL string `json:"top_result_url" yaml:"top_result_url"`
}

// NewSearchRecord builds a validated SearchRecord (R1.2).
func NewSearchRecord(query string, keywords []string, ts time.Time, count int, topURL string) (SearchRecord, error) {
	rec := SearchRecord{
		Query:        query,
		Keywords:     keywords,
		Timestamp:    ts,
		ResultsCount: count,
		TopResultURL: topURL,
	}
	if err := rec.Validate(); err != nil {
		return SearchRecord{}, err
	}
	return rec, nil
}

// Validate checks the SearchRecord invariants: non-empty query and
// keywords, non-negative result count and ID.
func (rec SearchRecord) Validate() error {
	if rec.Query == "" {
		return fmt.Errorf("search record query is empty")
	}
	if len(rec.Keywords) == 0 {
		return fmt.Errorf("search record has no keywords")
	}
	if rec.ResultsCount < 0 {
		return fmt.Errorf("results count %d is negative", rec.ResultsCount)
	}
	if rec.ID < 0 {
		return fmt.Errorf("record ID %d is negative", rec.ID)
	}
	return nil
}

// Summary returns a one-line description of the record for list output:
// truncated query, up to three keywords, and the result count.
func (rec SearchRecord) Summary() string {
	query := rec.Query
	if len(query) > 50 {
		query = query[:50] + "..."
	}
	keywords := strings.Join(rec.Keywords[:min(3, len(rec.Keywords))], ", ")
	if len(rec.Keywords) > 3 {
		keywords += "..."
	}
	return fmt.Sprintf("query: %s | keywords: %s | results: %d", query, keywords, rec.ResultsCount)
}
