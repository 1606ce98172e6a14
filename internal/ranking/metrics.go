// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pdiddy/math-search/pkg/types"
)

// BoostMetrics explains how one result's score would be boosted: the
// incoming base relevance, every factor, their product, and the capped
// final score (R6.1, R6.2). Reported for diagnostics; nothing is written
// back to the result.
type BoostMetrics struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`

	BaseRelevance float64 `json:"base_relevance" yaml:"base_relevance"`

	Factors `yaml:",inline"`

	// TotalBoost is the product of the six factors.
	TotalBoost float64 `json:"total_boost" yaml:"total_boost"`

	// FinalScore is base relevance times total boost, capped at 1.0.
	FinalScore float64 `json:"final_score" yaml:"final_score"`

	MathContentDetected bool `json:"math_content_detected" yaml:"math_content_detected"`
}

// metricsTitleLimit is the display length titles are truncated to.
const metricsTitleLimit = 50

// Metrics reports the boost breakdown for each result, in input order
// (R6.3). Because the factors come from the same computation that
// ApplyDomainBoost uses, FinalScore always equals the score that boosting
// would produce.
func Metrics(results []types.SearchResult) []BoostMetrics {
	metrics := make([]BoostMetrics, len(results))
	for i, r := range results {
		f := computeFactors(r)
		total := f.Total()

		metrics[i] = BoostMetrics{
			Title:               truncateTitle(r.Title),
			URL:                 r.URL,
			BaseRelevance:       r.RelevanceScore,
			Factors:             f,
			TotalBoost:          total,
			FinalScore:          math.Min(r.RelevanceScore*total, 1.0),
			MathContentDetected: r.MathContentDetected,
		}
	}
	return metrics
}

// truncateTitle limits a title to metricsTitleLimit runes with an ellipsis.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= metricsTitleLimit {
		return title
	}
	return string(runes[:metricsTitleLimit]) + "..."
}

// FormatMetrics writes the boost breakdown as an aligned table, one row
// per result in input order.
func FormatMetrics(metrics []BoostMetrics, w io.Writer) {
	if len(metrics) == 0 {
		fmt.Fprintln(w, "No results to explain.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-53s  %5s  %5s  %5s  %5s  %5s  %5s  %5s  %6s  %6s\n",
		"Rank", "Title", "Base", "Src", "Math", "Term", "Depth", "Cmplx", "Acad", "Boost", "Final")
	fmt.Fprintln(w, strings.Repeat("-", 124))

	for i, m := range metrics {
		fmt.Fprintf(w, "%-4d  %-53s  %5.2f  %5.2f  %5.2f  %5.2f  %5.2f  %5.2f  %5.2f  %6.2f  %6.3f\n",
			i+1, m.Title, m.BaseRelevance, m.Source, m.MathContent, m.MathTerms,
			m.DomainDepth, m.Complexity, m.AcademicLevel, m.TotalBoost, m.FinalScore)
	}
}
