// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "math-search/0.1"). Per prd001-search R5.3.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search stage.
// Per prd001-search R1.4, R5.1-R5.5.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of results per provider (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// EnableArxiv controls whether the arXiv provider is used.
	EnableArxiv bool `json:"enable_arxiv" yaml:"enable_arxiv"`

	// EnableGoogle controls whether the Google Custom Search provider is used.
	// Requires GoogleAPIKey and GoogleEngineID.
	EnableGoogle bool `json:"enable_google" yaml:"enable_google"`

	// EnableBing controls whether the Bing Web Search provider is used.
	// Requires BingAPIKey.
	EnableBing bool `json:"enable_bing" yaml:"enable_bing"`

	// GoogleAPIKey authenticates Google Custom Search requests.
	GoogleAPIKey string `json:"google_api_key,omitempty" yaml:"google_api_key,omitempty"`

	// GoogleEngineID is the Google Custom Search engine identifier.
	GoogleEngineID string `json:"google_engine_id,omitempty" yaml:"google_engine_id,omitempty"`

	// BingAPIKey authenticates Bing Web Search requests.
	BingAPIKey string `json:"bing_api_key,omitempty" yaml:"bing_api_key,omitempty"`

	// InterBackendDelay is the delay between launching calls to different
	// backends (default 0).
	InterBackendDelay time.Duration `json:"inter_backend_delay" yaml:"inter_backend_delay"`
}

// HistoryConfig holds settings for the search history store.
// Per prd005-search-history R1.4, R4.1.
type HistoryConfig struct {
	// DBPath is the SQLite database file path (default "math-search.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxDisplay is the default maximum number of records in list output
	// (default 20).
	MaxDisplay int `json:"max_display" yaml:"max_display"`

	// RetentionDays is the age past which clear removes records.
	// Zero keeps everything.
	RetentionDays int `json:"retention_days" yaml:"retention_days"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	History HistoryConfig `json:"history" yaml:"history"`
}
