package records

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	bracketsRe   = regexp.MustCompile(`[()\[\]{}]`)
	// Load tokens such as "20kg", "20 kg", "45lbs" or a bare "8".
	loadTokenRe = regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s*(?:kg|lbs|lb)?`)
)

// foldString lowercases s and strips diacritics, so "Panca Piàna" becomes "panca piana".
func foldString(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// NormalizeKey canonicalizes an exercise name into the key that personal
// records are stored under. Names differing only in case, accents,
// spacing, brackets or embedded load tokens share one key.
func NormalizeKey(name string) string {
	key := foldString(strings.TrimSpace(name))
	key = bracketsRe.ReplaceAllString(key, "")
	key = loadTokenRe.ReplaceAllString(key, "")
	key = whitespaceRe.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}

// normalizeForMatch is lighter than NormalizeKey: numbers stay, since
// "21s curl" and "curl" are different exercises for matching purposes.
func normalizeForMatch(name string) string {
	s := foldString(strings.TrimSpace(name))
	s = bracketsRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
