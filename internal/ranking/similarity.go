// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import "math"

// similarity estimates the textual similarity of a query and a document
// in [0, 1]. It uses the two-document TF-IDF cosine; if that produces a
// non-finite value it falls back to plain word overlap (R1.4).
func similarity(query, doc string) float64 {
	s := tfidfSimilarity(query, doc)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return wordOverlap(query, doc)
	}
	return s
}

// tfidfSimilarity computes cosine similarity over TF-IDF vectors built
// from just the two input texts (R1.1-R1.3). Document frequency is 1 or 2:
// a term appearing in both texts gets idf ln(2/2) = 0 and contributes with
// weight tf alone; a term unique to one side gets idf ln(2) and is
// up-weighted. Term weight is tf * (1 + idf) so shared terms still count.
func tfidfSimilarity(a, b string) float64 {
	wordsA := contentWords(a)
	wordsB := contentWords(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0.0
	}

	countsA := termCounts(wordsA)
	countsB := termCounts(wordsB)

	vocab := make(map[string]bool, len(countsA)+len(countsB))
	for w := range countsA {
		vocab[w] = true
	}
	for w := range countsB {
		vocab[w] = true
	}

	var dot, normA, normB float64
	for w := range vocab {
		cA := countsA[w]
		cB := countsB[w]

		df := 0
		if cA > 0 {
			df++
		}
		if cB > 0 {
			df++
		}
		idf := math.Log(2.0 / float64(df))

		wA := float64(cA) / float64(len(wordsA)) * (1.0 + idf)
		wB := float64(cB) / float64(len(wordsB)) * (1.0 + idf)

		dot += wA * wB
		normA += wA * wA
		normB += wB * wB
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// wordOverlap computes the Jaccard overlap of the raw token sets of two
// texts: |intersection| / |union|, or 0 when either text has no tokens.
func wordOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func termCounts(words []string) map[string]int {
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	return counts
}
