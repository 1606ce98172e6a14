// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/math-search/internal/history"
	"github.com/pdiddy/math-search/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect and manage past searches (list, search, stats, clear)",
	Long: `History manages the local SQLite record of past searches. Use
subcommands to list recent searches, find old queries, summarize usage,
or clear out old records.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past searches, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	days, _ := cmd.Flags().GetInt("days")

	var records []types.SearchRecord
	if days > 0 {
		records, err = store.Recent(context.Background(), days, limit)
	} else {
		records, err = store.List(context.Background(), limit, offset)
	}
	if err != nil {
		return err
	}
	return printRecords(cmd, records)
}

// --- search subcommand ---

var historySearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Find past searches whose query matches text",
	RunE:  runHistorySearch,
}

func runHistorySearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide text to match: math-search history search calculus")
	}
	text := strings.Join(args, " ")

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.SearchByQuery(context.Background(), text, limit)
	if err != nil {
		return err
	}
	return printRecords(cmd, records)
}

// --- stats subcommand ---

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize search history usage",
	RunE:  runHistoryStats,
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(context.Background())
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	history.FormatStats(st, os.Stdout)
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete history records older than a number of days",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	if days <= 0 {
		days = historySettings().RetentionDays
	}
	if days <= 0 {
		return fmt.Errorf("provide --days N (or set history.retention_days in the config)")
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.DeleteOlderThan(context.Background(), days)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d record(s) older than %d days\n", deleted, days)
	return nil
}

// --- shared helpers ---

// openHistory opens the history store with the configured database path.
func openHistory() (*history.Store, error) {
	return history.NewStore(historySettings())
}

func printRecords(cmd *cobra.Command, records []types.SearchRecord) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	history.FormatRecords(records, os.Stdout)
	return nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().Bool("json", false, "output records as JSON")

	// List flags.
	historyListCmd.Flags().Int("limit", 0, "maximum records to show (0 = configured default)")
	historyListCmd.Flags().Int("offset", 0, "records to skip before listing")
	historyListCmd.Flags().Int("days", 0, "only show searches from the last N days")

	// Search flags.
	historySearchCmd.Flags().Int("limit", 0, "maximum records to show (0 = configured default)")

	// Clear flags.
	historyClearCmd.Flags().Int("days", 0, "delete records older than this many days")

	// Wire subcommands.
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historySearchCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)

	rootCmd.AddCommand(historyCmd)
}
