// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the math-search pipeline.
// Implements: prd001-search (SearchResult, R4.1-R4.3);
//
//	prd004-math-text (MathTerm, R2.1-R2.3);
//	prd005-search-history (SearchRecord, R1.1-R1.3).
//
// See docs/ARCHITECTURE § Pipeline Interface, § Data Structures.
package types

import (
	"fmt"
	"strings"
	"time"
)

// SearchResult represents one candidate document returned by a search
// provider. Per prd001-search R4.1, each result carries display metadata,
// the provider label, a relevance score, and the math-content flag set by
// the provider at retrieval time.
type SearchResult struct {
	// Title is the document title as returned by the provider. Never empty.
	Title string `json:"title" yaml:"title"`

	// URL is the document location and the identity key for deduplication.
	// Never empty.
	URL string `json:"url" yaml:"url"`

	// Snippet is the provider-supplied text fragment shown with the result.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Source identifies which provider found this result (e.g. "Google",
	// "Bing", "arXiv").
	Source string `json:"source" yaml:"source"`

	// RelevanceScore is a value between 0.0 and 1.0. Providers assign a
	// provisional score; the ranking engine replaces it.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`

	// Timestamp records when the result was retrieved. Used only as the
	// final ranking tie-break.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// MathContentDetected reports whether the provider's detector found
	// mathematical content in the title or snippet.
	MathContentDetected bool `json:"math_content_detected" yaml:"math_content_detected"`
}

// NewSearchResult builds a validated SearchResult. It is the single
// validation boundary for results entering the pipeline (R4.2); downstream
// stages treat results as already well-formed values.
func NewSearchResult(title, url, snippet, source string, score float64, ts time.Time, mathDetected bool) (SearchResult, error) {
	r := SearchResult{
		Title:               title,
		URL:                 url,
		Snippet:             snippet,
		Source:              source,
		RelevanceScore:      score,
		Timestamp:           ts,
		MathContentDetected: mathDetected,
	}
	if err := r.Validate(); err != nil {
		return SearchResult{}, err
	}
	return r, nil
}

// Validate checks the SearchResult invariants (R4.2): non-empty title and
// URL, relevance score within [0, 1].
func (r SearchResult) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("search result title is empty")
	}
	if strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("search result URL is empty")
	}
	if r.RelevanceScore < 0.0 || r.RelevanceScore > 1.0 {
		return fmt.Errorf("relevance score %.4f outside [0, 1]", r.RelevanceScore)
	}
	return nil
}

// WithScore returns a copy of the result with the relevance score replaced.
// The receiver is not modified; ranking stages produce new values (R4.3).
func (r SearchResult) WithScore(score float64) SearchResult {
	r.RelevanceScore = score
	return r
}
