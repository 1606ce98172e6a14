// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ranking scores search results for relevance to a mathematical
// query and orders them by a multi-criteria sort. Scoring works on the
// result text alone; no corpus statistics or external calls are involved,
// so every function here is deterministic.
// Implements: prd002-relevance-scoring (R1-R4); prd003-domain-ranking (R1-R6);
//
//	docs/ARCHITECTURE § Relevance and Ranking.
package ranking

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into word tokens. Runs of characters that are not
// letters, digits, or underscores separate tokens; empty tokens are
// dropped. Callers lowercase beforehand when case-insensitive matching is
// wanted.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// contentWords tokenizes lowercased text and drops stop words and
// single-character tokens, leaving the vocabulary used for similarity.
func contentWords(text string) []string {
	var words []string
	for _, w := range Tokenize(strings.ToLower(text)) {
		if stopWords[w] || utf8.RuneCountInString(w) <= 1 {
			continue
		}
		words = append(words, w)
	}
	return words
}

// tokenSet returns the distinct lowercased tokens of text.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range Tokenize(strings.ToLower(text)) {
		set[w] = true
	}
	return set
}
