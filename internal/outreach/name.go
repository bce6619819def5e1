// Package outreach implements the cold-outreach heuristics: guessing
// a recruiter's name from web-search result titles and deriving a
// probable email address from it.
package outreach

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// nameNormalizer decomposes accented characters and drops the
// combining marks, so "Hélène" becomes "Helene" before lowercasing.
var nameNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName strips diacritics, lowercases, and trims a display
// name. Punctuation already present (hyphens inside names) is kept.
// Total function: empty input yields empty output, and the result is
// idempotent under re-normalization.
func NormalizeName(fullName string) string {
	stripped, _, err := transform.String(nameNormalizer, fullName)
	if err != nil {
		// Invalid UTF-8 passes through untransformed rather than failing.
		stripped = fullName
	}
	return strings.TrimSpace(strings.ToLower(stripped))
}

// StripTitleNoise truncates a search-result title at the first '-' or
// '|' and trims, removing LinkedIn-style suffixes such as
// "Jean Dupont - Dave | LinkedIn" → "Jean Dupont".
func StripTitleNoise(title string) string {
	if i := strings.IndexAny(title, "-|"); i >= 0 {
		title = title[:i]
	}
	return strings.TrimSpace(title)
}
