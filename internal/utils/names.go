package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameParticles are connective particles dropped when building a matching key.
// Legacy reservation rows spell passenger names with and without them.
var nameParticles = map[string]bool{
	"de":  true,
	"da":  true,
	"do":  true,
	"das": true,
	"dos": true,
}

// NormalizeName returns the canonical matching key for a passenger display
// name: lowercase, diacritics stripped, whitespace collapsed, connective
// particles removed. Two genuinely different people can share a key; the
// resolver treats that as an accepted ambiguity, not an error.
func NormalizeName(s string) string {
	// Chained transformers carry state, so build one per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	folded = strings.ToLower(folded)

	fields := strings.Fields(folded)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if nameParticles[f] {
			continue
		}
		out = append(out, f)
	}
	return strings.Join(out, " ")
}

// SameName reports whether two display names collapse to the same key.
// Empty names never match anything, including each other.
func SameName(a, b string) bool {
	ka := NormalizeName(a)
	if ka == "" {
		return false
	}
	return ka == NormalizeName(b)
}
