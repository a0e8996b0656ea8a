// Package normalize canonicalizes free-text names so that spelling
// variants of the same party compare equal: case, diacritics, punctuation,
// whitespace, and trailing legal-entity suffixes are all erased.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLegalSuffixes lists the legal-entity suffix tokens removed when
// they trail a name ("Acme B.V." and "ACME" normalize identically).
var DefaultLegalSuffixes = []string{
	"ltd", "limited", "inc", "incorporated", "llc", "llp", "plc",
	"bv", "nv", "vof", "gmbh", "ag", "sa", "sarl", "srl", "spa",
	"co", "corp", "company", "corporation", "pt", "cv", "pte", "oy", "ab",
}

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizer canonicalizes names for comparison. The zero value is not
// usable; construct with New.
type Normalizer struct {
	suffixes map[string]struct{}
}

// New creates a Normalizer that strips the given trailing legal-entity
// suffix tokens. A nil slice selects DefaultLegalSuffixes; an explicit
// empty slice disables suffix stripping.
func New(legalSuffixes []string) *Normalizer {
	if legalSuffixes == nil {
		legalSuffixes = DefaultLegalSuffixes
	}
	set := make(map[string]struct{}, len(legalSuffixes))
	for _, s := range legalSuffixes {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return &Normalizer{suffixes: set}
}

// Normalize returns the canonical form of text. It is total and
// idempotent: it never fails, and normalizing an already-normalized
// string is a no-op. Empty or whitespace-only input yields "".
func (n *Normalizer) Normalize(text string) string {
	lowered := strings.ToLower(text)
	if stripped, _, err := transform.String(stripDiacritics, lowered); err == nil {
		lowered = stripped
	}

	// Punctuation becomes a token boundary rather than vanishing, so
	// "de-vries" keeps two tokens. Dots and apostrophes join
	// abbreviations instead: "B.V." collapses to "bv".
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '\'':
		default:
			b.WriteByte(' ')
		}
	}

	// Strip trailing legal suffixes, but never the whole name: a company
	// literally named "BV" stays "bv".
	tokens := strings.Fields(b.String())
	for len(tokens) > 1 {
		if _, ok := n.suffixes[tokens[len(tokens)-1]]; !ok {
			break
		}
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}
