package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/math-search/internal/history"
	"github.com/pdiddy/math-search/internal/mathtext"
	"github.com/pdiddy/math-search/internal/ranking"
	"github.com/pdiddy/math-search/internal/search"
	"github.com/pdiddy/math-search/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search web and academic sources and rank the results",
	Long: `Search queries the enabled providers concurrently, deduplicates the
combined results by URL, scores them for mathematical relevance, and
prints a ranked table.

Provider groups are selected with --web (Google, Bing) and --academic
(arXiv); the default searches all of them. Google and Bing are skipped
with a notice when their API keys are missing. Every successful search
is recorded in the history database unless --no-history is given.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("query", "", "search text (alternative to positional arguments)")
	searchCmd.Flags().Bool("web", false, "search web providers only (Google, Bing)")
	searchCmd.Flags().Bool("academic", false, "search academic providers only (arXiv)")
	searchCmd.Flags().Bool("all", false, "search all providers (default)")
	searchCmd.Flags().Int("max-results", 0, "maximum results to keep after ranking (default 10)")
	searchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "write the query and results to a YAML file")
	searchCmd.Flags().Bool("explain", false, "print the boost breakdown for each result")
	searchCmd.Flags().Bool("no-history", false, "do not record this search in history")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query, _ := cmd.Flags().GetString("query")
	if query == "" {
		query = strings.Join(args, " ")
	}
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("provide search text as arguments or with --query")
	}

	cfg := searchSettings(cmd)
	backends := selectBackends(cmd, cfg, os.Stderr)
	if len(backends) == 0 {
		return fmt.Errorf("no search backends available: check provider settings and .secrets/ keys")
	}

	out, err := search.Search(context.Background(), query, backends, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteQueryFile(path, cfg, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d result(s) to %s\n", len(out.Results), path)
	}

	if skip, _ := cmd.Flags().GetBool("no-history"); !skip {
		if err := recordSearch(context.Background(), out); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record search history: %v\n", err)
		}
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(out, os.Stdout)
	}
	search.FormatTable(out, os.Stdout)

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		fmt.Fprintln(os.Stdout)
		printExplanation(out.Query, out.Results, os.Stdout)
	}
	return nil
}

// selectBackends builds the provider list for the requested groups,
// skipping providers whose credentials are missing.
func selectBackends(cmd *cobra.Command, cfg types.SearchConfig, w io.Writer) []search.Backend {
	web, _ := cmd.Flags().GetBool("web")
	academic, _ := cmd.Flags().GetBool("academic")
	if all, _ := cmd.Flags().GetBool("all"); all || (!web && !academic) {
		web, academic = true, true
	}

	client := &http.Client{Timeout: cfg.Timeout}

	var backends []search.Backend
	if web && cfg.EnableGoogle {
		if cfg.GoogleAPIKey != "" && cfg.GoogleEngineID != "" {
			backends = append(backends, &search.GoogleBackend{Client: client})
		} else {
			fmt.Fprintln(w, "Skipping Google: no API key or engine ID configured")
		}
	}
	if web && cfg.EnableBing {
		if cfg.BingAPIKey != "" {
			backends = append(backends, &search.BingBackend{Client: client})
		} else {
			fmt.Fprintln(w, "Skipping Bing: no API key configured")
		}
	}
	if academic && cfg.EnableArxiv {
		backends = append(backends, &search.ArxivBackend{Client: client})
	}
	return backends
}

// printExplanation recomputes base scores for the results and prints the
// factor table. Scoring is deterministic, so the Final column matches the
// scores shown in the results table.
func printExplanation(query string, results []types.SearchResult, w io.Writer) {
	rescored := ranking.ScoreAll(query, results)
	ranking.FormatMetrics(ranking.Metrics(rescored), w)
}

// recordSearch appends one history record for a completed search.
func recordSearch(ctx context.Context, out search.Output) error {
	keywords := mathtext.SearchKeywords(out.Query)
	if len(keywords) == 0 {
		keywords = strings.Fields(strings.ToLower(out.Query))
	}
	topURL := ""
	if len(out.Results) > 0 {
		topURL = out.Results[0].URL
	}

	rec, err := types.NewSearchRecord(out.Query, keywords, time.Now(), len(out.Results), topURL)
	if err != nil {
		return err
	}

	store, err := history.NewStore(historySettings())
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Add(ctx, rec)
	return err
}
