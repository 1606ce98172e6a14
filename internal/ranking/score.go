// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import (
	"math"

	"github.com/pdiddy/math-search/pkg/types"
)

// Score computes the base relevance of a result to a query, in [0, 1]
// (R2.1-R2.4). The score combines text similarity and keyword overlap with
// a floor constant, then applies the math-content and title-match
// multipliers. The result value is not modified; callers decide whether to
// store the returned score.
func Score(query string, result types.SearchResult) float64 {
	doc := result.Title + " " + result.Snippet

	sim := similarity(query, doc)
	kw := keywordScore(query, result)

	mathBoost := 1.0
	if result.MathContentDetected {
		mathBoost = 1.2
	}

	combined := (sim*0.4 + kw*0.4 + 0.2) * mathBoost * titleBoost(query, result.Title)
	return clamp01(combined)
}

// keywordScore measures query keyword coverage of the result text in
// [0, 1] (R3.1-R3.3). The coverage ratio is the fraction of distinct query
// tokens present in the title or snippet; each covered token that is a
// weighted math term multiplies the ratio by its weight, compounding when
// several terms match. The product is capped at 1.
func keywordScore(query string, result types.SearchResult) float64 {
	queryWords := tokenSet(query)
	if len(queryWords) == 0 {
		return 0.0
	}
	resultWords := tokenSet(result.Title + " " + result.Snippet)

	matched := 0
	termBoost := 1.0
	for w := range queryWords {
		if !resultWords[w] {
			continue
		}
		matched++
		if weight, ok := mathTermWeights[w]; ok {
			termBoost *= weight
		}
	}

	overlap := float64(matched) / float64(len(queryWords))
	return math.Min(overlap*termBoost, 1.0)
}

// titleBoost rewards query tokens that appear in the title, scaling from
// 1.0 (no overlap) to 1.3 (every query token present) (R2.3). An empty
// query earns the neutral 1.0.
func titleBoost(query, title string) float64 {
	queryWords := tokenSet(query)
	if len(queryWords) == 0 {
		return 1.0
	}
	titleWords := tokenSet(title)

	matched := 0
	for w := range queryWords {
		if titleWords[w] {
			matched++
		}
	}
	return 1.0 + float64(matched)/float64(len(queryWords))*0.3
}

// ScoreAll returns a copy of results with each base relevance score
// recomputed against the query (R2.5). Input order is preserved.
func ScoreAll(query string, results []types.SearchResult) []types.SearchResult {
	scored := make([]types.SearchResult, len(results))
	for i, r := range results {
		scored[i] = r.WithScore(Score(query, r))
	}
	return scored
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0.0), 1.0)
}
