// Package distance provides the string distance metrics shared by the
// KNN classifier and the clustering engine. Every metric is a pure
// symmetric function returning a value in [0, 1], defined for all
// inputs including empty strings.
package distance

import "strings"

// Func computes a normalized distance between two strings.
type Func func(a, b string) float64

// Metric names accepted by ByName.
const (
	Default     = "default"
	Jaccard     = "jaccard"
	Cosine      = "cosine"
	Levenshtein = "levenshtein"
)

// Names lists the recognized metric names in presentation order.
func Names() []string {
	return []string{Default, Jaccard, Cosine, Levenshtein}
}

// ByName returns the metric registered under name. Unrecognized names
// fall back to the default word-overlap metric so a stale or mistyped
// configuration value degrades quietly instead of failing the run.
func ByName(name string) Func {
	switch name {
	case Jaccard:
		return JaccardDistance
	case Cosine:
		return CosineDistance
	case Levenshtein:
		return LevenshteinDistance
	default:
		return WordOverlapDistance
	}
}

// tokenSet splits s on whitespace and returns the set of distinct
// tokens. Case is preserved; callers normalize upstream.
func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// wordCounts splits s on whitespace and returns token frequencies.
func wordCounts(s string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range strings.Fields(s) {
		counts[tok]++
	}
	return counts
}
