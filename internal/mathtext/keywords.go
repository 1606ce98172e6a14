// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mathtext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxMathKeywords  = 8
	maxOtherKeywords = 4
	maxKeywords      = 10
)

// SearchKeywords generates search keywords from text: confidently
// identified terms first, then extracted formulas, then remaining plain
// words of three or more letters. Math-related keywords take priority and
// fill up to eight slots, other words up to four, ten in total. Order is
// deterministic: term confidence order, then occurrence order.
func SearchKeywords(text string) []string {
	seen := make(map[string]bool)
	var ordered []string
	add := func(kw string) {
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		ordered = append(ordered, kw)
	}

	for _, term := range IdentifyTerms(text) {
		if term.Confidence >= 0.6 {
			add(term.Term)
		}
	}
	for _, formula := range ExtractFormulas(text) {
		add(formula)
	}
	for _, word := range keywordWords(text) {
		if !keywordStopWords[strings.ToLower(word)] {
			add(word)
		}
	}

	var mathRelated, other []string
	for _, kw := range ordered {
		if isMathRelated(kw) {
			mathRelated = append(mathRelated, kw)
		} else {
			other = append(other, kw)
		}
	}

	keywords := make([]string, 0, maxKeywords)
	keywords = append(keywords, mathRelated[:min(len(mathRelated), maxMathKeywords)]...)
	keywords = append(keywords, other[:min(len(other), maxOtherKeywords)]...)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// keywordWords extracts candidate words: maximal word-character runs made
// entirely of ASCII letters or CJK characters, at least three runes long.
func keywordWords(text string) []string {
	runs := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	var words []string
	for _, run := range runs {
		if utf8.RuneCountInString(run) < 3 {
			continue
		}
		if isKeywordRun(run) {
			words = append(words, run)
		}
	}
	return words
}

func isKeywordRun(run string) bool {
	for _, r := range run {
		ascii := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		cjk := r >= 0x4E00 && r <= 0x9FFF
		if !ascii && !cjk {
			return false
		}
	}
	return true
}

// isMathRelated reports whether a keyword is a known mathematical term or
// contains a mathematical symbol.
func isMathRelated(keyword string) bool {
	if _, ok := termCategory[strings.ToLower(keyword)]; ok {
		return true
	}
	return containsMathSymbol(keyword)
}
