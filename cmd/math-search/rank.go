package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/math-search/internal/ranking"
	"github.com/pdiddy/math-search/internal/search"
	"github.com/pdiddy/math-search/pkg/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank [file]",
	Short: "Re-rank previously saved search results",
	Long: `Rank re-scores a saved query file offline: every result gets a fresh
relevance score against the file's query, domain boosts are applied, and
the results are re-ordered. No APIs are queried.

Use --out to write the re-ranked file, or read the table/JSON output.`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().String("in", "", "query file to re-rank (or pass it as an argument)")
	rankCmd.Flags().String("out", "", "write the re-ranked results to this file")
	rankCmd.Flags().Bool("json", false, "output results as JSON")
	rankCmd.Flags().Bool("explain", false, "print the boost breakdown for each result")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	inPath, _ := cmd.Flags().GetString("in")
	if inPath == "" && len(args) > 0 {
		inPath = args[0]
	}
	if inPath == "" {
		return fmt.Errorf("provide a query file: math-search rank results.yaml")
	}

	qf, err := search.ReadQueryFile(inPath)
	if err != nil {
		return err
	}

	ranked := ranking.Rank(ranking.ApplyDomainBoost(ranking.ScoreAll(qf.Query, qf.Results)))

	out := search.Output{
		Query:         qf.Query,
		Results:       ranked,
		DupsRemoved:   qf.Summary.DuplicatesRemoved,
		BackendErrors: qf.Summary.BackendErrors,
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		cfg := types.SearchConfig{MaxResults: qf.Config.MaxResults}
		if err := search.WriteQueryFile(outPath, cfg, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d result(s) to %s\n", len(out.Results), outPath)
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
