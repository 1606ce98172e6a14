package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/math-search/internal/mathtext"
	"github.com/pdiddy/math-search/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Detect mathematical content in text",
	Long: `Analyze runs the math text analyzer over the given text (or stdin when
no text is given) and reports identified terms with their categories and
LaTeX forms, extracted formulas, and suggested search keywords.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output the analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

// analysis bundles everything the analyzer reports about one text.
type analysis struct {
	MathContent bool             `json:"math_content"`
	Terms       []types.MathTerm `json:"terms"`
	Formulas    []string         `json:"formulas"`
	Keywords    []string         `json:"keywords"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("provide text as arguments or on stdin")
	}

	a := analysis{
		MathContent: mathtext.Detect(text),
		Terms:       mathtext.IdentifyTerms(text),
		Formulas:    mathtext.ExtractFormulas(text),
		Keywords:    mathtext.SearchKeywords(text),
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	printAnalysis(a, os.Stdout)
	return nil
}

func printAnalysis(a analysis, w io.Writer) {
	if a.MathContent {
		fmt.Fprintln(w, "math content: yes")
	} else {
		fmt.Fprintln(w, "math content: no")
	}

	if len(a.Terms) > 0 {
		fmt.Fprintf(w, "\nterms (%d):\n", len(a.Terms))
		for _, t := range a.Terms {
			fmt.Fprintf(w, "  %-24s  %-18s  %.2f  %s\n", t.Term, t.Category, t.Confidence, t.LaTeX)
		}
	}
	if len(a.Formulas) > 0 {
		fmt.Fprintf(w, "\nformulas (%d):\n", len(a.Formulas))
		for _, f := range a.Formulas {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	if len(a.Keywords) > 0 {
		fmt.Fprintf(w, "\nkeywords: %s\n", strings.Join(a.Keywords, ", "))
	}
}
