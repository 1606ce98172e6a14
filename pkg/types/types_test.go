// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"testing"
	"time"
)

func TestSearchResultValidate(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		result  SearchResult
		wantErr string
	}{
		{
			name:   "valid",
			result: SearchResult{Title: "Calculus Notes", URL: "https://example.com", RelevanceScore: 0.5, Timestamp: ts},
		},
		{
			name:    "empty title",
			result:  SearchResult{URL: "https://example.com", RelevanceScore: 0.5},
			wantErr: "title is empty",
		},
		{
			name:    "whitespace title",
			result:  SearchResult{Title: "   ", URL: "https://example.com", RelevanceScore: 0.5},
			wantErr: "title is empty",
		},
		{
			name:    "empty url",
			result:  SearchResult{Title: "Calculus Notes", RelevanceScore: 0.5},
			wantErr: "URL is empty",
		},
		{
			name:    "score below range",
			result:  SearchResult{Title: "Calculus Notes", URL: "https://example.com", RelevanceScore: -0.1},
			wantErr: "outside [0, 1]",
		},
		{
			name:    "score above range",
			result:  SearchResult{Title: "Calculus Notes", URL: "https://example.com", RelevanceScore: 1.1},
			wantErr: "outside [0, 1]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewSearchResult(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	r, err := NewSearchResult("Calculus Notes", "https://example.com", "derivatives", "Google", 0.8, ts, true)
	if err != nil {
		t.Fatalf("NewSearchResult() error = %v", err)
	}
	if r.Source != "Google" || !r.MathContentDetected || r.RelevanceScore != 0.8 {
		t.Errorf("unexpected result: %+v", r)
	}

	if _, err := NewSearchResult("", "https://example.com", "", "Google", 0.8, ts, false); err == nil {
		t.Errorf("NewSearchResult with empty title should fail")
	}
}

func TestSearchResultWithScore(t *testing.T) {
	r := SearchResult{Title: "Calculus Notes", URL: "https://example.com", RelevanceScore: 0.3}

	updated := r.WithScore(0.9)

	if updated.RelevanceScore != 0.9 {
		t.Errorf("updated.RelevanceScore = %v, want 0.9", updated.RelevanceScore)
	}
	if r.RelevanceScore != 0.3 {
		t.Errorf("receiver mutated: RelevanceScore = %v, want 0.3", r.RelevanceScore)
	}
	if updated.Title != r.Title || updated.URL != r.URL {
		t.Errorf("WithScore changed fields other than the score: %+v", updated)
	}
}

func TestMathTermValidate(t *testing.T) {
	tests := []struct {
		name    string
		term    MathTerm
		wantErr string
	}{
		{
			name: "valid",
			term: MathTerm{Term: "derivative", LaTeX: `\frac{d}{dx}`, Category: CategoryCalculus, Confidence: 0.9},
		},
		{
			name: "valid without latex",
			term: MathTerm{Term: "eigenvalue", Category: CategoryLinearAlgebra, Confidence: 0.7},
		},
		{
			name:    "empty term",
			term:    MathTerm{Category: CategoryAlgebra, Confidence: 0.5},
			wantErr: "term is empty",
		},
		{
			name:    "unknown category",
			term:    MathTerm{Term: "derivative", Category: TermCategory("astrology"), Confidence: 0.5},
			wantErr: "unknown term category",
		},
		{
			name:    "empty category",
			term:    MathTerm{Term: "derivative", Confidence: 0.5},
			wantErr: "unknown term category",
		},
		{
			name:    "confidence out of range",
			term:    MathTerm{Term: "derivative", Category: CategoryCalculus, Confidence: 1.5},
			wantErr: "outside [0, 1]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.term.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMathTermHighConfidence(t *testing.T) {
	if (MathTerm{Term: "derivative", Category: CategoryCalculus, Confidence: 0.8}).HighConfidence() != true {
		t.Errorf("confidence 0.8 should be high")
	}
	if (MathTerm{Term: "derivative", Category: CategoryCalculus, Confidence: 0.79}).HighConfidence() != false {
		t.Errorf("confidence 0.79 should not be high")
	}
}

func TestSearchRecordValidate(t *testing.T) {
	ts := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  SearchRecord
		wantErr string
	}{
		{
			name:   "valid",
			record: SearchRecord{Query: "linear algebra", Keywords: []string{"linear", "algebra"}, Timestamp: ts, ResultsCount: 5},
		},
		{
			name:    "empty query",
			record:  SearchRecord{Keywords: []string{"algebra"}},
			wantErr: "query is empty",
		},
		{
			name:    "no keywords",
			record:  SearchRecord{Query: "linear algebra"},
			wantErr: "no keywords",
		},
		{
			name:    "negative count",
			record:  SearchRecord{Query: "linear algebra", Keywords: []string{"algebra"}, ResultsCount: -1},
			wantErr: "is negative",
		},
		{
			name:    "negative id",
			record:  SearchRecord{ID: -2, Query: "linear algebra", Keywords: []string{"algebra"}},
			wantErr: "is negative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSearchRecordSummary(t *testing.T) {
	rec := SearchRecord{
		Query:        "linear algebra eigenvalues",
		Keywords:     []string{"linear", "algebra", "eigenvalues", "matrix"},
		ResultsCount: 7,
	}

	got := rec.Summary()

	if !strings.Contains(got, "linear algebra eigenvalues") {
		t.Errorf("Summary() = %q, missing query", got)
	}
	if !strings.Contains(got, "linear, algebra, eigenvalues...") {
		t.Errorf("Summary() = %q, want first three keywords with ellipsis", got)
	}
	if !strings.Contains(got, "results: 7") {
		t.Errorf("Summary() = %q, missing result count", got)
	}

	long := SearchRecord{
		Query:    strings.Repeat("x", 60),
		Keywords: []string{"algebra"},
	}
	if got := long.Summary(); !strings.Contains(got, strings.Repeat("x", 50)+"...") {
		t.Errorf("Summary() = %q, want query truncated at 50 characters", got)
	}
}
