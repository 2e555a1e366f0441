package catalog

import (
	"regexp"
	"strings"
)

// termRe matches the recognized term-label vocabulary, e.g. "Fall 2022".
var termRe = regexp.MustCompile(`^(Fall|Winter|Summer) (\d{4})$`)

// termMonths maps a season to the month used in schedule-feed term codes.
var termMonths = map[string]string{
	"Winter": "01",
	"Summer": "05",
	"Fall":   "09",
}

// IsTerm reports whether s is a recognized term label.
func IsTerm(s string) bool {
	return termRe.MatchString(s)
}

// FilterTerms returns the recognized term labels from terms, in source order.
// Anything else (placeholders, promotional text) is dropped.
func FilterTerms(terms []string) []string {
	filtered := make([]string, 0, len(terms))
	for _, term := range terms {
		if IsTerm(term) {
			filtered = append(filtered, term)
		}
	}
	return filtered
}

// TermAbbrev returns the leading word of a term string ("Fall" for
// "Fall 2022"). Instructor paragraphs use it as a positional marker.
func TermAbbrev(term string) string {
	abbrev, _, _ := strings.Cut(strings.TrimSpace(term), " ")
	return abbrev
}

// TermCode returns the schedule-feed code of a term, e.g. "202209" for
// "Fall 2022". The bool result is false if term is not a recognized label.
func TermCode(term string) (string, bool) {
	m := termRe.FindStringSubmatch(term)
	if m == nil {
		return "", false
	}
	return m[2] + termMonths[m[1]], true
}
