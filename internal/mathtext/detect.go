// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mathtext analyzes text for mathematical content: a fast
// detector used by the search providers, term identification with
// categories and confidences, LaTeX formula extraction, and search
// keyword generation. All analysis is lexical; formulas are extracted,
// not evaluated.
// Implements: prd004-math-text (R1-R4);
//
//	docs/ARCHITECTURE § Math Text Analysis.
package mathtext

import "strings"

// Detect reports whether text contains mathematical content: any known
// math keyword (case-insensitive, English or Chinese) or any LaTeX marker
// (case-sensitive, on the raw text). Empty text is never mathematical.
func Detect(text string) bool {
	if text == "" {
		return false
	}

	lower := strings.ToLower(text)
	for _, keyword := range detectKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	for _, marker := range latexMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
