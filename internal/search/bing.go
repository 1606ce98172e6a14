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

// bingAPIBase is the Bing Web Search endpoint. Declared as a var so tests
// can substitute an httptest server.
var bingAPIBase = "https://api.bing.microsoft.com/v7.0/search"

// BingBackend queries the Bing Web Search v7 API (R1.4).
type BingBackend struct {
	Client *http.Client
}

// Name returns the backend identifier.
func (b *BingBackend) Name() string { return "bing" }

// Search queries the Bing Web Search API and returns results (R1.4).
func (b *BingBackend) Search(ctx context.Context, query string, cfg types.SearchConfig) ([]types.SearchResult, error) {
	if cfg.BingAPIKey == "" {
		return nil, fmt.Errorf("Bing search requires an API key")
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 || maxResults > defaultMaxResults {
		maxResults = defaultMaxResults
	}

	params := url.Values{
		"q":     {query},
		"count": {strconv.Itoa(maxResults)},
	}
	reqURL := bingAPIBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	req.Header.Set("Ocp-Apim-Subscription-Key", cfg.BingAPIKey)

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Bing API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Bing API returned HTTP %d", resp.StatusCode)
	}

	var br bingResponse
	if err := json.NewDecoder(resp.Body).Decode(&br); err != nil {
		return nil, fmt.Errorf("parsing Bing response: %w", err)
	}

	var results []types.SearchResult
	for _, page := range br.WebPages.Value {
		r, err := types.NewSearchResult(
			page.Name,
			page.URL,
			page.Snippet,
			"Bing",
			webProvisionalScore,
			time.Now(),
			mathtext.Detect(page.Name+" "+page.Snippet),
		)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// Bing Web Search API JSON structures.
type bingResponse struct {
	WebPages bingWebPages `json:"webPages"`
}

type bingWebPages struct {
	Value []bingPage `json:"value"`
}

type bingPage struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
