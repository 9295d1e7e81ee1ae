package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes free text for matching: lowercase, Serbian đ -> dj,
// diacritics stripped, everything outside [a-z0-9\s] replaced by a space,
// whitespace collapsed. Total and idempotent; empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(strings.ToLower(s))
	// đ has no combining decomposition, so unidecode would fold it to plain
	// "d"; map it to "dj" first, as written in Serbian latin without diacritics.
	s = strings.ReplaceAll(s, "đ", "dj")
	s = unidecode.Unidecode(s)
	s = reNonAlnum.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizePlace is the gentler variant used for city and municipality
// equality: lowercase, whitespace collapse, NFKD diacritic strip. Punctuation
// and đ are kept as-is so place names are compared on their own terms.
func NormalizePlace(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSpaces.ReplaceAllString(s, " ")
	out, _, err := transform.String(placeTransform, s)
	if err != nil {
		return s
	}
	return out
}

var placeTransform = transform.Chain(norm.NFKD, transform.RemoveFunc(isMn), norm.NFC)

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
