// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries web and academic APIs and returns ranked,
// deduplicated results.
// Implements: prd001-search (R1-R5);
//
//	docs/ARCHITECTURE § Search.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/math-search/internal/ranking"
	"github.com/pdiddy/math-search/pkg/types"
)

// Backend searches a single provider. Each backend (arXiv, Google, Bing)
// implements this interface per the Strategy pattern (R1.1).
type Backend interface {
	Name() string
	Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error)
}

// Provisional scores assigned at retrieval time. The ranking engine
// replaces them after deduplication (R2.3).
const (
	webProvisionalScore      = 0.8
	academicProvisionalScore = 0.9
)

// defaultMaxResults caps results per backend when the config leaves
// MaxResults unset.
const defaultMaxResults = 10

// Output holds the ranked results and collection statistics.
type Output struct {
	Query         string
	Results       []types.SearchResult
	DupsRemoved   int
	BackendErrors []string
}

// Search fans the query out to all backends concurrently, deduplicates by
// URL, scores the survivors with the relevance engine, applies domain
// boosts, ranks, and returns the top N (R1-R3). Failed backends produce a
// warning on w and are skipped; the search fails only when the query is
// empty or no backends are configured.
func Search(ctx context.Context, query string, backends []Backend, cfg types.SearchConfig, w io.Writer) (Output, error) {
	if strings.TrimSpace(query) == "" {
		return Output{}, fmt.Errorf("query is empty: provide search text")
	}
	if len(backends) == 0 {
		return Output{}, fmt.Errorf("no search backends configured")
	}

	type backendResult struct {
		results []types.SearchResult
		err     error
		name    string
	}

	ch := make(chan backendResult, len(backends))
	var wg sync.WaitGroup

	for i, b := range backends {
		if i > 0 && cfg.InterBackendDelay > 0 {
			time.Sleep(cfg.InterBackendDelay)
		}
		wg.Add(1)
		go func(b Backend) {
			defer wg.Done()
			results, err := b.Search(ctx, query, cfg)
			ch <- backendResult{results: results, err: err, name: b.Name()}
		}(b)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var all []types.SearchResult
	var backendErrors []string
	for br := range ch {
		if br.err != nil {
			backendErrors = append(backendErrors, fmt.Sprintf("%s: %v", br.name, br.err))
			fmt.Fprintf(w, "warning: backend %s failed: %v\n", br.name, br.err)
			continue
		}
		all = append(all, br.results...)
	}

	deduped, removed := deduplicate(all)

	ranked := ranking.Rank(ranking.ApplyDomainBoost(ranking.ScoreAll(query, deduped)))

	if cfg.MaxResults > 0 && len(ranked) > cfg.MaxResults {
		ranked = ranked[:cfg.MaxResults]
	}

	return Output{
		Query:         query,
		Results:       ranked,
		DupsRemoved:   removed,
		BackendErrors: backendErrors,
	}, nil
}

// deduplicate merges results that share a URL (R2.1). The URL is the
// identity key; the first occurrence survives and absorbs later ones.
func deduplicate(results []types.SearchResult) ([]types.SearchResult, int) {
	seen := make(map[string]int) // URL key → index in deduped
	var deduped []types.SearchResult
	removed := 0

	for _, r := range results {
		key := normalizeURL(r.URL)
		if idx, ok := seen[key]; ok {
			mergeInto(&deduped[idx], r)
			removed++
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, r)
	}
	return deduped, removed
}

// mergeInto fills empty fields of dst from src and keeps the higher
// provisional score (R2.2). The math flag is sticky: one provider
// detecting math content is enough.
func mergeInto(dst *types.SearchResult, src types.SearchResult) {
	if dst.Title == "" && src.Title != "" {
		dst.Title = src.Title
	}
	if dst.Snippet == "" && src.Snippet != "" {
		dst.Snippet = src.Snippet
	}
	if src.RelevanceScore > dst.RelevanceScore {
		dst.RelevanceScore = src.RelevanceScore
	}
	if src.MathContentDetected {
		dst.MathContentDetected = true
	}
	if src.Timestamp.After(dst.Timestamp) {
		dst.Timestamp = src.Timestamp
	}
	if dst.Source != src.Source && !strings.Contains(dst.Source, src.Source) {
		dst.Source = dst.Source + "," + src.Source
	}
}

// normalizeURL returns the dedup key for a result URL. Scheme and host
// compare case-insensitively and a trailing slash is not a distinct page;
// the path keeps its case.
func normalizeURL(u string) string {
	u = strings.TrimSuffix(strings.TrimSpace(u), "/")
	i := strings.Index(u, "://")
	if i < 0 {
		return u
	}
	scheme := strings.ToLower(u[:i+3])
	rest := u[i+3:]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		return scheme + strings.ToLower(rest[:j]) + rest[j:]
	}
	return scheme + strings.ToLower(rest)
}

// FormatTable writes results as a human-readable table to w (R4.1).
func FormatTable(out Output, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-55s  %-12s  %-6s  %-4s  %s\n",
		"Rank", "Title", "Source", "Score", "Math", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range out.Results {
		mathCol := ""
		if r.MathContentDetected {
			mathCol = "yes"
		}
		fmt.Fprintf(w, "%-4d  %-55s  %-12s  %-6.2f  %-4s  %s\n",
			i+1, truncate(r.Title, 55), truncate(r.Source, 12), r.RelevanceScore, mathCol, r.URL)
	}

	fmt.Fprintf(w, "\n%d results", len(out.Results))
	if out.DupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", out.DupsRemoved)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes results as indented JSON to w (R4.2).
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Results)
}

// truncate shortens s to max runes, marking the cut with "...". Titles and
// snippets may be Chinese, so the cut counts runes, not bytes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
