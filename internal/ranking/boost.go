// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import (
	"math"
	"strings"

	"github.com/pdiddy/math-search/pkg/types"
)

// Factors holds the six multiplicative boost factors computed for one
// result (R4.1). Both boost application and the metrics report derive
// their numbers from the same Factors value, so the two can never drift.
type Factors struct {
	// Source is the authority weight of the result's host, in [1.0, 1.9].
	Source float64 `json:"source_boost" yaml:"source_boost"`

	// MathContent is 1.15 when the provider detected mathematical
	// content, 1.0 otherwise.
	MathContent float64 `json:"math_content_boost" yaml:"math_content_boost"`

	// MathTerms rewards weighted term occurrences, term density, and
	// advanced-term co-occurrence, in [1.0, 2.5].
	MathTerms float64 `json:"math_terms_boost" yaml:"math_terms_boost"`

	// DomainDepth rewards advanced concepts, research vocabulary, and
	// mathematical notation, in [1.0, 1.8].
	DomainDepth float64 `json:"domain_depth_boost" yaml:"domain_depth_boost"`

	// Complexity maps the average complexity grade of matched indicator
	// terms into [1.0, 2.0].
	Complexity float64 `json:"complexity_boost" yaml:"complexity_boost"`

	// AcademicLevel scales by audience-level markers, in [0.8, 1.6].
	// It is the only factor that can reduce a score.
	AcademicLevel float64 `json:"academic_level_boost" yaml:"academic_level_boost"`
}

// Total returns the product of all six factors.
func (f Factors) Total() float64 {
	return f.Source * f.MathContent * f.MathTerms * f.DomainDepth * f.Complexity * f.AcademicLevel
}

// computeFactors derives the boost factors for one result (R4.2). Text
// factors read the title and snippet; the source factor reads the URL.
func computeFactors(r types.SearchResult) Factors {
	text := r.Title + " " + r.Snippet

	f := Factors{
		Source:        sourceBoost(r.URL),
		MathContent:   1.0,
		MathTerms:     mathTermsBoost(text),
		DomainDepth:   domainDepthBoost(text),
		Complexity:    complexityBoost(text),
		AcademicLevel: academicLevelBoost(r),
	}
	if r.MathContentDetected {
		f.MathContent = 1.15
	}
	return f
}

// ApplyDomainBoost multiplies each result's relevance score by its total
// boost, capped at 1.0 (R4.3, R4.4). It returns a new slice of the same
// length and order; the input is untouched.
func ApplyDomainBoost(results []types.SearchResult) []types.SearchResult {
	boosted := make([]types.SearchResult, len(results))
	for i, r := range results {
		total := computeFactors(r).Total()
		boosted[i] = r.WithScore(math.Min(r.RelevanceScore*total, 1.0))
	}
	return boosted
}

// sourceBoost returns the authority weight of the longest known domain
// substring of url, or 1.0 when no known domain matches (R4.5). Taking the
// longest match keeps specific hosts ahead of their parent domains.
func sourceBoost(url string) float64 {
	urlLower := strings.ToLower(url)

	boost := 1.0
	matchLen := 0
	for domain, weight := range academicSources {
		if len(domain) > matchLen && strings.Contains(urlLower, domain) {
			boost = weight
			matchLen = len(domain)
		}
	}
	return boost
}

// mathTermsBoost compounds a factor for every weighted term occurrence,
// then applies the density and co-occurrence bonuses, capped at 2.5
// (R4.6). Each occurrence of a term with weight w contributes a
// 1 + (w-1) * 0.1 multiplier.
func mathTermsBoost(text string) float64 {
	textLower := strings.ToLower(text)

	boost := 1.0
	for term, weight := range mathTermWeights {
		if count := strings.Count(textLower, term); count > 0 {
			boost *= 1.0 + (weight-1.0)*float64(count)*0.1
		}
	}

	boost *= termDensityBoost(textLower)
	boost *= cooccurrenceBoost(textLower)

	return math.Min(boost, 2.5)
}

// termDensityBoost grades the ratio of math-term occurrences to total
// words. Multi-word terms count by substring; single-word terms count by
// exact token match so that "algebra" does not also count "algebraic".
func termDensityBoost(textLower string) float64 {
	words := Tokenize(textLower)
	if len(words) == 0 {
		return 1.0
	}

	termCount := 0
	for term := range mathTermWeights {
		if !strings.Contains(textLower, term) {
			continue
		}
		if strings.Contains(term, " ") {
			termCount += strings.Count(textLower, term)
		} else {
			for _, w := range words {
				if w == term {
					termCount++
				}
			}
		}
	}

	density := float64(termCount) / float64(len(words))
	switch {
	case density >= 0.4:
		return 1.3
	case density >= 0.25:
		return 1.25
	case density >= 0.15:
		return 1.2
	case density >= 0.05:
		return 1.1
	default:
		return 1.0
	}
}

// cooccurrenceBoost rewards several advanced terms appearing together.
func cooccurrenceBoost(textLower string) float64 {
	count := 0
	for _, term := range cooccurrenceTerms {
		if strings.Contains(textLower, term) {
			count++
		}
	}

	switch {
	case count >= 3:
		return 1.4
	case count == 2:
		return 1.2
	case count == 1:
		return 1.1
	default:
		return 1.0
	}
}

// domainDepthBoost rewards graduate-level concepts, research vocabulary,
// mathematical symbols, and LaTeX markers, capped at 1.8 (R4.7). Symbol
// and LaTeX checks look at the raw text; term checks are case-insensitive.
func domainDepthBoost(text string) float64 {
	textLower := strings.ToLower(text)
	depth := 1.0

	advancedCount := 0
	for _, concept := range advancedConcepts {
		if strings.Contains(textLower, concept) {
			advancedCount++
		}
	}
	if advancedCount > 0 {
		depth *= 1.0 + float64(advancedCount)*0.15
	}

	researchCount := 0
	for _, keyword := range researchKeywords {
		if strings.Contains(textLower, keyword) {
			researchCount++
		}
	}
	if researchCount > 0 {
		depth *= 1.0 + float64(researchCount)*0.1
	}

	if strings.ContainsAny(text, mathSymbols) {
		depth *= 1.2
	}
	if strings.ContainsAny(text, `$\`) {
		depth *= 1.15
	}

	return math.Min(depth, 1.8)
}

// complexityBoost maps the mean complexity grade of matched indicator
// terms into [1.0, 2.0] (R4.8). No matches give the neutral 1.0.
func complexityBoost(text string) float64 {
	textLower := strings.ToLower(text)

	var total float64
	matched := 0
	for term, grade := range complexityIndicators {
		if strings.Contains(textLower, term) {
			total += grade
			matched++
		}
	}
	if matched == 0 {
		return 1.0
	}

	avg := total / float64(matched)
	return math.Min(1.0+(avg-1.0)*0.3, 2.0)
}

// academicLevelBoost multiplies the weights of every audience-level marker
// found in the title and snippet, adds a 1.2 bump for academically hosted
// URLs, and clamps to [0.8, 1.6] (R4.9).
func academicLevelBoost(r types.SearchResult) float64 {
	text := strings.ToLower(r.Title + " " + r.Snippet)

	boost := 1.0
	for indicator, weight := range academicIndicators {
		if strings.Contains(text, indicator) {
			boost *= weight
		}
	}

	urlLower := strings.ToLower(r.URL)
	for _, marker := range eduURLMarkers {
		if strings.Contains(urlLower, marker) {
			boost *= 1.2
			break
		}
	}

	return math.Min(math.Max(boost, 0.8), 1.6)
}
