// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mathtext

import "github.com/pdiddy/math-search/pkg/types"

// detectKeywords flag a text as mathematical when any of them appears,
// case-insensitively. English and Chinese forms are checked alike.
var detectKeywords = []string{
	"equation", "formula", "theorem", "proof", "mathematics", "calculus",
	"algebra", "geometry", "statistics", "probability", "function",
	"derivative", "integral", "matrix", "vector", "polynomial",
	"方程", "公式", "定理", "证明", "数学", "微积分", "代数", "几何",
	"统计", "概率", "函数", "导数", "积分", "矩阵", "向量", "多项式",
}

// latexMarkers flag a text as mathematical when present verbatim. The
// plain "$" and "\" entries subsume the longer ones; the longer forms are
// kept so the list reads as the notation it detects.
var latexMarkers = []string{"$", `\`, "_{", "^{", `\frac`, `\sum`, `\int`}

// categoryTerms lists the known vocabulary of each mathematical branch,
// English and Chinese. The reverse lookup termCategory is built from it.
var categoryTerms = map[types.TermCategory][]string{
	types.CategoryAlgebra: {
		"polynomial", "equation", "variable", "coefficient", "constant", "expression",
		"function", "domain", "range", "inverse", "composition", "linear", "quadratic",
		"cubic", "matrix", "determinant", "eigenvalue", "eigenvector", "vector", "scalar",
		"alpha", "beta", "gamma", "delta", "epsilon", "theta", "lambda", "mu",
		"pi", "sigma", "phi", "omega", "algebra",
		"多项式", "方程", "变量", "系数", "常数", "表达式", "函数", "定义域", "值域",
		"反函数", "复合函数", "线性", "二次", "三次", "矩阵", "行列式", "特征值", "特征向量",
		"向量", "标量",
	},
	types.CategoryCalculus: {
		"derivative", "integral", "limit", "continuity", "differentiable", "antiderivative",
		"partial", "gradient", "divergence", "curl", "laplacian", "calculus",
		"导数", "积分", "极限", "连续性", "可微", "原函数", "偏导数", "梯度", "散度", "旋度",
		"拉普拉斯",
	},
	types.CategoryGeometry: {
		"triangle", "circle", "ellipse", "parabola", "hyperbola", "polygon", "angle",
		"perpendicular", "parallel", "theorem", "proof", "lemma", "corollary", "axiom",
		"postulate", "geometry",
		"三角形", "圆", "椭圆", "抛物线", "双曲线", "多边形", "角", "垂直",
		"平行", "定理", "证明", "引理", "推论", "公理", "公设",
	},
	types.CategoryStatistics: {
		"probability", "distribution", "mean", "median", "mode", "variance", "deviation",
		"correlation", "normal", "binomial", "poisson", "chi-square", "t-test", "hypothesis",
		"statistics",
		"概率", "分布", "均值", "中位数", "众数", "方差", "标准差", "相关性", "正态分布",
		"二项分布", "泊松分布", "卡方", "t检验", "假设检验",
	},
	types.CategoryAnalysis: {
		"exponential", "logarithmic", "trigonometric", "analysis",
		"指数", "对数", "三角函数",
	},
}

// termCategory maps each known term to its branch. The category sets are
// disjoint, so the reverse map is unambiguous.
var termCategory = buildTermCategory()

func buildTermCategory() map[string]types.TermCategory {
	m := make(map[string]types.TermCategory)
	for category, terms := range categoryTerms {
		for _, term := range terms {
			m[term] = category
		}
	}
	return m
}

// symbolClasses group the recognized mathematical symbols. Each class is
// scanned in order so identified symbols keep a stable grouping.
var symbolClasses = []string{
	"∀∃∈∉⊂⊃⊆⊇∪∩∅", // set theory
	"∫∮∑∏∂∇∆",     // calculus
	"≤≥≠≈≡∞",      // comparison and special values
	"αβγδεζηθικλμνξοπρστυφχψω", // Greek lowercase
	"ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ", // Greek uppercase
	"±×÷√∛∜", // operators
}

// greekLowercase feeds the long-term confidence bonus.
const greekLowercase = "αβγδεζηθικλμνξοπρστυφχψω"

// contextWords mark mathematical discussion near an identified term.
var contextWords = []string{
	"equation", "formula", "calculate", "solve", "proof",
	"公式", "计算", "求解", "证明",
}

// latexByTerm maps terms to a dedicated LaTeX form. Terms not listed keep
// themselves as their LaTeX representation.
var latexByTerm = map[string]string{
	"alpha": `\alpha`, "beta": `\beta`, "gamma": `\gamma`, "delta": `\delta`,
	"epsilon": `\epsilon`, "theta": `\theta`, "lambda": `\lambda`, "mu": `\mu`,
	"pi": `\pi`, "sigma": `\sigma`, "phi": `\phi`, "omega": `\omega`,
	"integral": `\int`, "derivative": `\frac{d}{dx}`, "limit": `\lim`,
	"infinity": `\infty`, "sum": `\sum`, "product": `\prod`,
	"积分": `\int`, "导数": `\frac{d}{dx}`, "极限": `\lim`,
	"无穷": `\infty`, "求和": `\sum`, "乘积": `\prod`,
}

// keywordStopWords are excluded from generated search keywords.
var keywordStopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "of": true, "with": true, "by": true,
	"are": true, "important": true, "concepts": true, "along": true,
	"other": true, "regular": true, "words": true, "like": true,
}
