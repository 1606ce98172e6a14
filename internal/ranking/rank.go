// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import (
	"sort"

	"github.com/pdiddy/math-search/pkg/types"
)

// Rank returns the results ordered best-first by the composite key:
// relevance score, then math-content detection, then source authority,
// then retrieval timestamp, all descending (R5.1-R5.4). A single
// comparison function encodes the whole precedence. The input slice is
// not modified.
func Rank(results []types.SearchResult) []types.SearchResult {
	ranked := make([]types.SearchResult, len(results))
	copy(ranked, results)

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		if a.MathContentDetected != b.MathContentDetected {
			return a.MathContentDetected
		}
		if sa, sb := sourceBoost(a.URL), sourceBoost(b.URL); sa != sb {
			return sa > sb
		}
		return a.Timestamp.After(b.Timestamp)
	})

	return ranked
}
