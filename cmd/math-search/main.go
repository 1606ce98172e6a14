// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the math-search CLI.
// Implements: prd001-search, prd002-relevance-scoring, prd003-domain-ranking,
//             prd004-math-text, prd005-search-history (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/math-search/internal/secrets"
	"github.com/pdiddy/math-search/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the math-search CLI.
var rootCmd = &cobra.Command{
	Use:   "math-search",
	Short: "Search and rank mathematics content from web and academic sources",
	Long: `math-search finds and ranks mathematics content. A query fans out to
Google Custom Search, Bing, and arXiv concurrently; the combined results
are deduplicated by URL, scored for mathematical relevance, boosted by
domain authority, and printed as a ranked table.

Each pipeline stage is a subcommand: search runs the full pipeline, rank
re-scores previously saved results offline, analyze inspects text for
mathematical content, and history manages the local search record.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./math-search.yaml or ~/.config/math-search/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("math-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "math-search"))
		}
	}

	viper.SetEnvPrefix("MATH_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("search.timeout", 30*time.Second)
	viper.SetDefault("search.user_agent", "math-search/0.1")
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.enable_arxiv", true)
	viper.SetDefault("search.enable_google", true)
	viper.SetDefault("search.enable_bing", true)
	viper.SetDefault("history.db_path", "math-search.db")
	viper.SetDefault("history.max_display", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchSettings assembles the search configuration from the config file,
// environment, loaded secrets, and command flags, in rising precedence.
func searchSettings(cmd *cobra.Command) types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		MaxResults:        viper.GetInt("search.max_results"),
		EnableArxiv:       viper.GetBool("search.enable_arxiv"),
		EnableGoogle:      viper.GetBool("search.enable_google"),
		EnableBing:        viper.GetBool("search.enable_bing"),
		GoogleAPIKey:      secretDefault("google-api-key", viper.GetString("search.google_api_key")),
		GoogleEngineID:    secretDefault("google-engine-id", viper.GetString("search.google_engine_id")),
		BingAPIKey:        secretDefault("bing-api-key", viper.GetString("search.bing_api_key")),
		InterBackendDelay: viper.GetDuration("search.inter_backend_delay"),
	}

	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	return cfg
}

// historySettings assembles the history store configuration.
func historySettings() types.HistoryConfig {
	return types.HistoryConfig{
		DBPath:        viper.GetString("history.db_path"),
		MaxDisplay:    viper.GetInt("history.max_display"),
		RetentionDays: viper.GetInt("history.retention_days"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
