// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mathtext

import (
	"regexp"
	"strings"
)

var (
	blockFormulaPattern  = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	inlineFormulaPattern = regexp.MustCompile(`\$([^$]+)\$`)
	latexEnvPattern      = regexp.MustCompile(`(?s)\\begin\{[^}]+\}.*?\\end\{[^}]+\}`)
)

// ExtractFormulas returns the LaTeX formulas found in text: display
// formulas ($$...$$), then inline formulas ($...$), then LaTeX
// environments (\begin...\end). Display formulas are removed before the
// inline scan so their contents are not matched twice. Delimiters are
// stripped from $-formulas; environments keep theirs. Duplicates are
// dropped, first occurrence wins.
func ExtractFormulas(text string) []string {
	var formulas []string

	for _, m := range blockFormulaPattern.FindAllStringSubmatch(text, -1) {
		formulas = append(formulas, strings.TrimSpace(m[1]))
	}

	remainder := blockFormulaPattern.ReplaceAllString(text, "")
	for _, m := range inlineFormulaPattern.FindAllStringSubmatch(remainder, -1) {
		formulas = append(formulas, strings.TrimSpace(m[1]))
	}

	for _, m := range latexEnvPattern.FindAllString(text, -1) {
		formulas = append(formulas, strings.TrimSpace(m))
	}

	seen := make(map[string]bool, len(formulas))
	var unique []string
	for _, f := range formulas {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		unique = append(unique, f)
	}
	return unique
}
