package ranking

import (
	"testing"
	"time"

	"github.com/pdiddy/math-search/pkg/types"
)

func TestRankOrdersByScore(t *testing.T) {
	input := []types.SearchResult{
		{Title: "low", URL: "https://example.com/1", RelevanceScore: 0.3},
		{Title: "high", URL: "https://example.com/2", RelevanceScore: 0.9},
		{Title: "mid", URL: "https://example.com/3", RelevanceScore: 0.6},
	}

	ranked := Rank(input)

	want := []string{"high", "mid", "low"}
	for i, title := range want {
		if ranked[i].Title != title {
			t.Errorf("ranked[%d].Title = %q, want %q", i, ranked[i].Title, title)
		}
	}
	for i, score := range []float64{0.9, 0.6, 0.3} {
		if ranked[i].RelevanceScore != score {
			t.Errorf("ranked[%d].RelevanceScore = %v, want %v (scores must not change)", i, ranked[i].RelevanceScore, score)
		}
	}
}

func TestRankMathContentBreaksTie(t *testing.T) {
	input := []types.SearchResult{
		{Title: "plain", URL: "https://example.com/1", RelevanceScore: 0.7},
		{Title: "math", URL: "https://example.com/2", RelevanceScore: 0.7, MathContentDetected: true},
	}

	ranked := Rank(input)

	if ranked[0].Title != "math" {
		t.Errorf("ranked[0].Title = %q, want %q (math content wins the tie)", ranked[0].Title, "math")
	}
}

func TestRankSourceBoostBreaksTie(t *testing.T) {
	input := []types.SearchResult{
		{Title: "blog", URL: "https://unknown-site.com/post", RelevanceScore: 0.7, MathContentDetected: true},
		{Title: "preprint", URL: "https://arxiv.org/abs/2301.00001", RelevanceScore: 0.7, MathContentDetected: true},
	}

	ranked := Rank(input)

	if ranked[0].Title != "preprint" {
		t.Errorf("ranked[0].Title = %q, want %q (stronger source wins the tie)", ranked[0].Title, "preprint")
	}
}

func TestRankTimestampBreaksTie(t *testing.T) {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	input := []types.SearchResult{
		{Title: "older", URL: "https://example.com/1", RelevanceScore: 0.7, Timestamp: older},
		{Title: "newer", URL: "https://example.com/2", RelevanceScore: 0.7, Timestamp: newer},
	}

	ranked := Rank(input)

	if ranked[0].Title != "newer" {
		t.Errorf("ranked[0].Title = %q, want %q (newer result wins the tie)", ranked[0].Title, "newer")
	}
}

func TestRankScoreOutranksMathContent(t *testing.T) {
	input := []types.SearchResult{
		{Title: "math", URL: "https://arxiv.org/abs/2301.00001", RelevanceScore: 0.7, MathContentDetected: true},
		{Title: "plain", URL: "https://unknown-site.com/post", RelevanceScore: 0.8},
	}

	ranked := Rank(input)

	if ranked[0].Title != "plain" {
		t.Errorf("ranked[0].Title = %q, want %q (score outranks all tie-breakers)", ranked[0].Title, "plain")
	}
}

func TestRankMathContentOutranksSource(t *testing.T) {
	input := []types.SearchResult{
		{Title: "strong source", URL: "https://arxiv.org/abs/2301.00001", RelevanceScore: 0.7},
		{Title: "math flagged", URL: "https://unknown-site.com/post", RelevanceScore: 0.7, MathContentDetected: true},
	}

	ranked := Rank(input)

	if ranked[0].Title != "math flagged" {
		t.Errorf("ranked[0].Title = %q, want %q (math content outranks source)", ranked[0].Title, "math flagged")
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) returned %d results", len(got))
	}
	if got := Rank([]types.SearchResult{}); len(got) != 0 {
		t.Errorf("Rank on empty slice returned %d results", len(got))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []types.SearchResult{
		{Title: "low", URL: "https://example.com/1", RelevanceScore: 0.3},
		{Title: "high", URL: "https://example.com/2", RelevanceScore: 0.9},
	}

	Rank(input)

	if input[0].Title != "low" || input[1].Title != "high" {
		t.Errorf("input order changed: [%q, %q]", input[0].Title, input[1].Title)
	}
}

func TestRankOrderingHolds(t *testing.T) {
	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	input := []types.SearchResult{
		{Title: "a", URL: "https://unknown-site.com/a", RelevanceScore: 0.5, Timestamp: ts},
		{Title: "b", URL: "https://arxiv.org/abs/1", RelevanceScore: 0.5, MathContentDetected: true, Timestamp: ts},
		{Title: "c", URL: "https://ocw.mit.edu/c", RelevanceScore: 0.9, Timestamp: ts},
		{Title: "d", URL: "https://arxiv.org/abs/2", RelevanceScore: 0.5, Timestamp: ts},
		{Title: "e", URL: "https://unknown-site.com/e", RelevanceScore: 0.5, MathContentDetected: true, Timestamp: ts.Add(time.Hour)},
		{Title: "f", URL: "https://unknown-site.com/f", RelevanceScore: 0.5, MathContentDetected: true, Timestamp: ts},
	}

	ranked := Rank(input)

	for i := 1; i < len(ranked); i++ {
		a, b := ranked[i-1], ranked[i]
		if a.RelevanceScore < b.RelevanceScore {
			t.Fatalf("score order violated at %d: %f < %f", i, a.RelevanceScore, b.RelevanceScore)
		}
		if a.RelevanceScore > b.RelevanceScore {
			continue
		}
		if !a.MathContentDetected && b.MathContentDetected {
			t.Fatalf("math-content order violated at %d", i)
		}
		if a.MathContentDetected != b.MathContentDetected {
			continue
		}
		sa, sb := sourceBoost(a.URL), sourceBoost(b.URL)
		if sa < sb {
			t.Fatalf("source order violated at %d: %f < %f", i, sa, sb)
		}
		if sa > sb {
			continue
		}
		if a.Timestamp.Before(b.Timestamp) {
			t.Fatalf("timestamp order violated at %d", i)
		}
	}
}
