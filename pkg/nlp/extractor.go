package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var numberPattern = regexp.MustCompile(`\d+`)

// priceCueWords mark a number in the query as a spending ceiling. A bare
// number without one of these is not a price filter.
var priceCueWords = []string{
	"under", "below", "less", "<=", "<", "upto", "up to", "₹", "rs", "rs.",
}

// Normalize lowercases the raw query and strips combining diacritics so the
// lexicon tables only need plain-ASCII entries. Punctuation is kept: brand
// tokens like "h&m" and cues like "<=" must survive.
func Normalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, lowered)
	if err != nil {
		return lowered
	}

	return result
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// DetectBrand returns the first entry of the brand lexicon that occurs as a
// substring of the normalized query, or "" when none does.
func DetectBrand(text string) string {
	for _, brand := range Brands {
		if strings.Contains(text, brand) {
			return brand
		}
	}
	return ""
}

// DetectCategory resolves the query to a canonical category. The first pass
// walks the synonym table in declaration order and stops at the first synonym
// found; only when nothing matched does a second pass try the logical category
// keys themselves as raw substrings.
func DetectCategory(text string) string {
	for _, entry := range Categories {
		for _, synonym := range entry.Synonyms {
			if strings.Contains(text, synonym) {
				return entry.Canonical
			}
		}
	}

	for _, entry := range Categories {
		if strings.Contains(text, entry.Key) {
			return entry.Canonical
		}
	}

	return ""
}

// DetectPriceCeiling extracts a spending ceiling from the query. It takes the
// first digit run left to right and honors it only when the text also carries
// a ceiling cue ("under", "upto", a currency marker). Additional numbers are
// ignored rather than combined into a range.
func DetectPriceCeiling(text string) (int, bool) {
	match := numberPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	price, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	for _, cue := range priceCueWords {
		if strings.Contains(text, cue) {
			return price, true
		}
	}

	return 0, false
}
