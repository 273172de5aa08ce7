package taskrepo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold lowers a string and strips diacritics so "Café" matches "cafe".
// The transformer chain carries internal state, so it is built per
// call rather than shared.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Fall back to plain case folding on malformed input.
		folded = s
	}
	return strings.ToLower(folded)
}
