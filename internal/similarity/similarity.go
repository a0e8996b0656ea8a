// Package similarity scores the closeness of two normalized names on a
// [0,1] scale by blending token-set overlap with two edit-based measures.
package similarity

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Blend weights. Token overlap dominates because watchlist names are
// frequently reordered ("de Vries, Jan" vs "Jan de Vries"); the edit-based
// measures catch transliteration noise within tokens.
const (
	tokenWeight       = 0.45
	levenshteinWeight = 0.35
	jaroWinklerWeight = 0.20
)

// Score returns the similarity of two normalized names in [0,1].
// It is symmetric, and Score(x, x) == 1.0 for any x. Empty strings are a
// defined edge case rather than an error: both empty scores 1.0 (two
// absent names are indistinguishable), one empty scores 0.0.
func Score(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	score := tokenWeight*tokenOverlap(a, b) +
		levenshteinWeight*levenshteinSimilarity(a, b) +
		jaroWinklerWeight*jaroWinkler(a, b)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// tokenOverlap is the Jaccard similarity of the two token sets.
func tokenOverlap(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// levenshteinSimilarity converts edit distance to a similarity ratio over
// the longer string's rune length.
func levenshteinSimilarity(a, b string) float64 {
	distance := levenshtein.ComputeDistance(a, b)
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// jaroWinkler computes the Jaro similarity with the Winkler common-prefix
// bonus (up to four runes, scaling factor 0.1).
func jaroWinkler(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	lenA, lenB := len(ra), len(rb)
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	matchWindow := lenA
	if lenB > matchWindow {
		matchWindow = lenB
	}
	matchWindow = matchWindow/2 - 1
	if matchWindow < 0 {
		matchWindow = 0
	}

	matchesA := make([]bool, lenA)
	matchesB := make([]bool, lenB)
	matches := 0
	for i := range ra {
		start := i - matchWindow
		if start < 0 {
			start = 0
		}
		end := i + matchWindow + 1
		if end > lenB {
			end = lenB
		}
		for j := start; j < end; j++ {
			if matchesB[j] || ra[i] != rb[j] {
				continue
			}
			matchesA[i] = true
			matchesB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := range ra {
		if !matchesA[i] {
			continue
		}
		for !matchesB[k] {
			k++
		}
		if ra[i] != rb[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	jaro := (m/float64(lenA) + m/float64(lenB) + (m-float64(transpositions)/2)/m) / 3.0

	prefix := 0
	for i := 0; i < lenA && i < lenB && i < 4; i++ {
		if ra[i] != rb[i] {
			break
		}
		prefix++
	}
	return jaro + 0.1*float64(prefix)*(1.0-jaro)
}
