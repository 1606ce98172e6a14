// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mathtext

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/math-search/pkg/types"
)

// englishTermPatterns match known English terms on word boundaries,
// case-insensitively. Grouped by topic; every alternative appears in
// categoryTerms, so matches always classify.
var englishTermPatterns = []*regexp.Regexp{
	// algebra
	regexp.MustCompile(`(?i)\b(?:polynomial|equation|variable|coefficient|constant|expression|function|domain|range|inverse|composition)\b`),
	regexp.MustCompile(`(?i)\b(?:linear|quadratic|cubic|exponential|logarithmic|trigonometric)\b`),
	regexp.MustCompile(`(?i)\b(?:matrix|determinant|eigenvalue|eigenvector|vector|scalar)\b`),
	regexp.MustCompile(`(?i)\b(?:alpha|beta|gamma|delta|epsilon|theta|lambda|mu|pi|sigma|phi|omega)\b`),

	// calculus
	regexp.MustCompile(`(?i)\b(?:derivative|integral|limit|continuity|differentiable|antiderivative)\b`),
	regexp.MustCompile(`(?i)\b(?:partial|gradient|divergence|curl|laplacian)\b`),

	// geometry
	regexp.MustCompile(`(?i)\b(?:triangle|circle|ellipse|parabola|hyperbola|polygon|angle|perpendicular|parallel)\b`),
	regexp.MustCompile(`(?i)\b(?:theorem|proof|lemma|corollary|axiom|postulate)\b`),

	// statistics
	regexp.MustCompile(`(?i)\b(?:probability|distribution|mean|median|mode|variance|deviation|correlation)\b`),
	regexp.MustCompile(`(?i)\b(?:normal|binomial|poisson|chi-square|t-test|hypothesis)\b`),

	// branches
	regexp.MustCompile(`(?i)\b(?:calculus|algebra|geometry|statistics|analysis)\b`),
}

// chineseTermPatterns match known Chinese terms. Each topic group is
// scanned separately so that compounds and their embedded terms (三角函数
// and 函数) are both found.
var chineseTermPatterns = []*regexp.Regexp{
	regexp.MustCompile(`多项式|方程|变量|系数|常数|表达式|函数|定义域|值域|反函数|复合函数`),
	regexp.MustCompile(`线性|二次|三次|指数|对数|三角函数`),
	regexp.MustCompile(`矩阵|行列式|特征值|特征向量|向量|标量`),
	regexp.MustCompile(`导数|积分|极限|连续性|可微|原函数`),
	regexp.MustCompile(`偏导数|梯度|散度|旋度|拉普拉斯`),
	regexp.MustCompile(`三角形|圆|椭圆|抛物线|双曲线|多边形|角|垂直|平行`),
	regexp.MustCompile(`定理|证明|引理|推论|公理|公设`),
	regexp.MustCompile(`概率|分布|均值|中位数|众数|方差|标准差|相关性`),
	regexp.MustCompile(`正态分布|二项分布|泊松分布|卡方|t检验|假设检验`),
}

// IdentifyTerms finds mathematical terms in text and classifies each with
// a category, a LaTeX form, and a confidence. Duplicate (term, category)
// pairs are dropped keeping the first hit; the result is ordered by
// confidence, highest first.
func IdentifyTerms(text string) []types.MathTerm {
	var terms []types.MathTerm

	for _, pattern := range englishTermPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			term := strings.ToLower(match)
			terms = append(terms, types.MathTerm{
				Term:       term,
				LaTeX:      latexFor(term),
				Category:   categoryOf(term),
				Confidence: termConfidence(term, text),
			})
		}
	}

	for _, pattern := range chineseTermPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			terms = append(terms, types.MathTerm{
				Term:       match,
				LaTeX:      latexFor(match),
				Category:   categoryOf(match),
				Confidence: termConfidence(match, text),
			})
		}
	}

	// Standalone symbols identify with fixed confidence; the symbol is its
	// own LaTeX form.
	for _, class := range symbolClasses {
		for _, r := range text {
			if strings.ContainsRune(class, r) {
				symbol := string(r)
				terms = append(terms, types.MathTerm{
					Term:       symbol,
					LaTeX:      symbol,
					Category:   types.CategoryOther,
					Confidence: 0.9,
				})
			}
		}
	}

	terms = dedupeTerms(terms)
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Confidence > terms[j].Confidence
	})
	return terms
}

func categoryOf(term string) types.TermCategory {
	if category, ok := termCategory[strings.ToLower(term)]; ok {
		return category
	}
	return types.CategoryOther
}

func latexFor(term string) string {
	if latex, ok := latexByTerm[strings.ToLower(term)]; ok {
		return latex
	}
	return term
}

// termConfidence grades an identification: 0.7 base, +0.2 for a known
// term, +0.1 for mathematical context near the term, +0.1 for long terms
// containing Greek letters, capped at 1.0.
func termConfidence(term, text string) float64 {
	confidence := 0.7

	if _, known := termCategory[strings.ToLower(term)]; known {
		confidence += 0.2
	}
	if hasMathContext(term, text) {
		confidence += 0.1
	}
	if utf8.RuneCountInString(term) > 6 && strings.ContainsAny(term, greekLowercase) {
		confidence += 0.1
	}

	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}

// hasMathContext reports whether the 50 characters around the term's
// first occurrence contain a mathematical symbol or a discussion marker.
func hasMathContext(term, text string) bool {
	lowerText := strings.ToLower(text)
	idx := strings.Index(lowerText, strings.ToLower(term))
	if idx < 0 {
		return false
	}

	runes := []rune(text)
	start := utf8.RuneCountInString(lowerText[:idx])
	end := start + utf8.RuneCountInString(term)
	if start > 50 {
		start -= 50
	} else {
		start = 0
	}
	if end+50 < len(runes) {
		end += 50
	} else {
		end = len(runes)
	}
	window := string(runes[start:end])

	if containsMathSymbol(window) {
		return true
	}
	windowLower := strings.ToLower(window)
	for _, word := range contextWords {
		if strings.Contains(windowLower, word) {
			return true
		}
	}
	return false
}

func containsMathSymbol(s string) bool {
	for _, class := range symbolClasses {
		if strings.ContainsAny(s, class) {
			return true
		}
	}
	return false
}

type termKey struct {
	term     string
	category types.TermCategory
}

func dedupeTerms(terms []types.MathTerm) []types.MathTerm {
	seen := make(map[termKey]bool, len(terms))
	var unique []types.MathTerm
	for _, t := range terms {
		key := termKey{strings.ToLower(t.Term), t.Category}
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
	}
	return unique
}
