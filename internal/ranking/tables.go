// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ranking

// stopWords are common English words excluded from similarity vocabulary.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "will": true,
	"with": true, "this": true, "but": true, "they": true, "have": true,
	"had": true, "what": true, "said": true, "each": true, "which": true,
	"their": true, "time": true, "if": true,
}

// mathTermWeights maps mathematical terms to relevance weights, graded by
// specialization. Multi-word entries match as substrings; single-word
// entries additionally match token-exact in density scoring.
var mathTermWeights = map[string]float64{
	// Core branches.
	"algebra":                1.6,
	"calculus":               1.6,
	"geometry":               1.6,
	"topology":               1.7,
	"analysis":               1.7,
	"statistics":             1.5,
	"probability":            1.5,
	"combinatorics":          1.6,
	"number theory":          1.7,
	"differential equations": 1.6,
	"linear algebra":         1.6,
	"abstract algebra":       1.7,
	"real analysis":          1.8,
	"complex analysis":       1.8,
	"functional analysis":    1.8,
	"algebraic geometry":     1.8,
	"differential geometry":  1.8,

	// Concepts and statement kinds.
	"theorem":     1.4,
	"lemma":       1.3,
	"corollary":   1.3,
	"proof":       1.3,
	"axiom":       1.4,
	"definition":  1.2,
	"proposition": 1.3,
	"conjecture":  1.5,
	"hypothesis":  1.3,

	// Objects and operations.
	"function":     1.3,
	"derivative":   1.4,
	"integral":     1.4,
	"limit":        1.4,
	"matrix":       1.3,
	"vector":       1.3,
	"polynomial":   1.3,
	"logarithm":    1.3,
	"exponential":  1.3,
	"trigonometry": 1.4,
	"sine":         1.2,
	"cosine":       1.2,
	"tangent":      1.2,
	"series":       1.4,
	"sequence":     1.3,
	"convergence":  1.4,
	"divergence":   1.4,

	// Methods and techniques.
	"formula":       1.3,
	"equation":      1.3,
	"inequality":    1.3,
	"optimization":  1.4,
	"algorithm":     1.3,
	"method":        1.2,
	"technique":     1.2,
	"approximation": 1.3,
	"iteration":     1.3,

	// Advanced structures.
	"manifold":        1.8,
	"homomorphism":    1.8,
	"isomorphism":     1.8,
	"eigenvalue":      1.5,
	"eigenvector":     1.5,
	"fourier":         1.6,
	"laplace":         1.6,
	"transform":       1.4,
	"group theory":    1.7,
	"ring theory":     1.7,
	"field theory":    1.7,
	"category theory": 1.9,
	"measure theory":  1.8,
	"operator theory": 1.8,

	// Applied mathematics.
	"model":                 1.2,
	"simulation":            1.3,
	"numerical":             1.4,
	"computational":         1.4,
	"applied":               1.3,
	"mathematical modeling": 1.5,
	"mathematical physics":  1.6,
	"operations research":   1.4,

	// Logic and foundations.
	"logic":              1.5,
	"set theory":         1.6,
	"mathematical logic": 1.7,
	"foundations":        1.6,
	"axiomatics":         1.6,
}

// academicSources maps domain substrings to authority weights. Lookups take
// the longest matching domain so that specific hosts win over their parents
// (mathscinet.ams.org over ams.org, mathworld.wolfram.com over wolfram.com).
var academicSources = map[string]float64{
	// Preprint servers and review databases.
	"arxiv.org":          1.9,
	"mathscinet.ams.org": 1.9,
	"zbmath.org":         1.8,

	// Mathematics reference sites.
	"mathworld.wolfram.com":  1.8,
	"planetmath.org":         1.7,
	"mathoverflow.net":       1.7,
	"math.stackexchange.com": 1.6,

	// University mathematics departments.
	"mit.edu":       1.8,
	"stanford.edu":  1.8,
	"harvard.edu":   1.8,
	"princeton.edu": 1.8,
	"caltech.edu":   1.8,
	"berkeley.edu":  1.7,
	"cmu.edu":       1.7,
	"yale.edu":      1.7,
	"columbia.edu":  1.7,
	"uchicago.edu":  1.7,

	// International universities.
	"cambridge.ac.uk": 1.7,
	"ox.ac.uk":        1.7,
	"imperial.ac.uk":  1.6,
	"ethz.ch":         1.7,
	"ens.fr":          1.7,
	"u-tokyo.ac.jp":   1.6,

	// Academic publishers.
	"springer.com":      1.6,
	"elsevier.com":      1.6,
	"wiley.com":         1.5,
	"cambridge.org":     1.6,
	"jstor.org":         1.7,
	"projecteuclid.org": 1.7,
	"ams.org":           1.8,

	// Online education platforms.
	"khanacademy.org": 1.4,
	"coursera.org":    1.3,
	"edx.org":         1.3,
	"brilliant.org":   1.4,

	// General references.
	"wikipedia.org":    1.3,
	"scholarpedia.org": 1.4,
	"nist.gov":         1.5,

	// Mathematical software documentation.
	"wolfram.com":   1.5,
	"mathworks.com": 1.4,
	"sagemath.org":  1.4,
	"sympy.org":     1.4,

	// Competition mathematics.
	"artofproblemsolving.com": 1.4,
	"imo-official.org":        1.5,

	// Professional societies.
	"maa.org":  1.6,
	"siam.org": 1.6,
	"ieee.org": 1.5,
}

// advancedConcepts signal graduate-level mathematical depth.
var advancedConcepts = []string{
	"manifold", "topology", "homomorphism", "isomorphism",
	"eigenvalue", "eigenvector", "fourier", "laplace",
	"differential equations", "number theory", "analysis",
	"abstract algebra", "real analysis", "complex analysis",
	"functional analysis", "measure theory", "category theory",
}

// researchKeywords signal research-grade writing.
var researchKeywords = []string{
	"theorem", "proof", "lemma", "corollary", "conjecture",
	"axiom", "proposition", "research", "paper", "journal",
	"publication", "study", "investigation", "novel", "new",
}

// cooccurrenceTerms are the advanced terms whose joint appearance earns a
// co-occurrence bonus.
var cooccurrenceTerms = []string{
	"manifold", "homomorphism", "isomorphism", "topology",
	"category theory", "measure theory", "functional analysis",
	"real analysis", "complex analysis", "abstract algebra",
	"algebraic geometry", "differential geometry", "operator theory",
}

// complexityIndicators map terms to complexity grades between 1.0 and 2.8.
var complexityIndicators = map[string]float64{
	"proof":      2.0,
	"theorem":    2.0,
	"lemma":      1.8,
	"corollary":  1.8,
	"conjecture": 2.2,

	"homomorphism":    2.5,
	"isomorphism":     2.5,
	"manifold":        2.3,
	"topology":        2.1,
	"category theory": 2.8,
	"measure theory":  2.4,

	"functional analysis":    2.6,
	"real analysis":          2.4,
	"complex analysis":       2.4,
	"differential equations": 2.2,

	"abstract algebra": 2.3,
	"group theory":     2.2,
	"ring theory":      2.2,
	"field theory":     2.2,

	"algebraic geometry":    2.7,
	"differential geometry": 2.5,

	// Foundational topics carry low complexity.
	"algebra":     1.2,
	"calculus":    1.3,
	"geometry":    1.1,
	"statistics":  1.0,
	"probability": 1.1,
}

// academicIndicators map audience-level markers to multipliers. Markers
// below 1.0 pull scores toward introductory material.
var academicIndicators = map[string]float64{
	"phd":        1.4,
	"doctorate":  1.4,
	"professor":  1.3,
	"research":   1.3,
	"university": 1.2,
	"college":    1.1,

	"journal":     1.4,
	"paper":       1.3,
	"article":     1.2,
	"publication": 1.3,
	"proceedings": 1.3,
	"conference":  1.2,

	"graduate":      1.3,
	"undergraduate": 1.1,
	"advanced":      1.2,
	"introduction":  1.0,
	"basic":         0.9,
	"elementary":    0.8,

	"course":   1.1,
	"lecture":  1.2,
	"seminar":  1.3,
	"workshop": 1.1,
	"tutorial": 1.0,
}

// mathSymbols are Unicode symbols whose presence marks mathematical notation.
const mathSymbols = "∫∑∂∇∞≤≥≠±"

// eduURLMarkers are URL substrings that mark academic hosting.
var eduURLMarkers = []string{".edu", ".ac.", "university", "college"}
