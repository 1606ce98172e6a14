// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/math-search/internal/httputil"
	"github.com/pdiddy/math-search/internal/mathtext"
	"github.com/pdiddy/math-search/pkg/types"
)

// googleAPIBase is the Google Custom Search endpoint. Declared as a var
// so tests can substitute an httptest server.
var googleAPIBase = "https://www.googleapis.com/customsearch/v1"

// GoogleBackend queries the Google Custom Search JSON API (R1.3).
type GoogleBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *GoogleBackend) Name() string { return "google" }

// Search queries the Custom Search API and returns results (R1.3). The
// math flag on each result comes from the lexical detector run over the
// title and snippet.
func (b *GoogleBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if cfg.GoogleAPIKey == "" || cfg.GoogleEngineID == "" {
		return nil, fmt.Errorf("Google search requires an API key and engine ID")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 || maxResults > defaultMaxResults {
		// The Custom Search API serves at most 10 results per request.
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"key": {cfg.GoogleAPIKey},
		"cx":  {cfg.GoogleEngineID},
		"q":   {query},
		"num": {strconv.Itoa(maxResults)},
	}
	reqURL := googleAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Google API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Google API returned HTTP %d", resp.StatusCode)
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, fmt.Errorf("parsing Google response: %w", err)
	}

	var results []types.SearchResult
	for _, item := range gr.Items {
		r, err := types.NewSearchResult(
			item.Title,
			item.Link,
			item.Snippet,
			"Google",
			webProvisionalScore,
			time.Now(),
			mathtext.Detect(item.Title+" "+item.Snippet),
		)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// Google Custom Search API JSON structures.
type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}
