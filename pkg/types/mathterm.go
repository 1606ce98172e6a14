// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// TermCategory classifies an identified mathematical term.
// Per prd004-math-text R2.2.
type TermCategory string

const (
	CategoryAlgebra               TermCategory = "algebra"
	CategoryCalculus              TermCategory = "calculus"
	CategoryGeometry              TermCategory = "geometry"
	CategoryStatistics            TermCategory = "statistics"
	CategoryLinearAlgebra         TermCategory = "linear_algebra"
	CategoryDifferentialEquations TermCategory = "differential_equations"
	CategoryTopology              TermCategory = "topology"
	CategoryNumberTheory          TermCategory = "number_theory"
	CategoryDiscreteMath          TermCategory = "discrete_math"
	CategoryAnalysis              TermCategory = "analysis"
	CategoryOther                 TermCategory = "other"
)

// validCategories is the closed set of accepted term categories.
var validCategories = map[TermCategory]bool{
	CategoryAlgebra:               true,
	CategoryCalculus:              true,
	CategoryGeometry:              true,
	CategoryStatistics:            true,
	CategoryLinearAlgebra:         true,
	CategoryDifferentialEquations: true,
	CategoryTopology:              true,
	CategoryNumberTheory:          true,
	CategoryDiscreteMath:          true,
	CategoryAnalysis:              true,
	CategoryOther:                 true,
}

// MathTerm is a mathematical term identified in input text, with its
// classification and the analyzer's confidence (prd004-math-text R2.1).
type MathTerm struct {
	// Term is the identified term as it appeared in the text.
	Term string `json:"term" yaml:"term"`

	// LaTeX is the LaTeX representation of the term (e.g. "\\frac{d}{dx}"
	// for "derivative"). Terms without a dedicated form carry themselves.
	LaTeX string `json:"latex" yaml:"latex"`

	// Category classifies the term into a mathematical branch.
	Category TermCategory `json:"category" yaml:"category"`

	// Confidence is the analyzer's confidence in the identification,
	// between 0.0 and 1.0.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// NewMathTerm builds a validated MathTerm (R2.3).
func NewMathTerm(term, latex string, category TermCategory, confidence float64) (MathTerm, error) {
	mt := MathTerm{
		Term:       term,
		LaTeX:      latex,
		Category:   category,
		Confidence: confidence,
	}
	if err := mt.Validate(); err != nil {
		return MathTerm{}, err
	}
	return mt, nil
}

// Validate checks the MathTerm invariants: non-empty term, known category,
// confidence within [0, 1].
func (mt MathTerm) Validate() error {
	if mt.Term == "" {
		return fmt.Errorf("math term is empty")
	}
	if !validCategories[mt.Category] {
		return fmt.Errorf("unknown term category %q", mt.Category)
	}
	if mt.Confidence < 0.0 || mt.Confidence > 1.0 {
		return fmt.Errorf("confidence %.4f outside [0, 1]", mt.Confidence)
	}
	return nil
}

// HighConfidence reports whether the identification is reliable enough to
// use without review.
func (mt MathTerm) HighConfidence() bool {
	return mt.Confidence >= 0.8
}
