package catalog

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeSpace collapses runs of whitespace, including non-breaking
// spaces, into single spaces and trims.
func normalizeSpace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// dropLabel removes the leading label word ("Terms:", "Instructors:").
func dropLabel(s string) string {
	_, rest, _ := strings.Cut(normalizeSpace(s), " ")
	return rest
}

// ParseTerms splits a terms paragraph such as "Terms: Fall 2022, Winter 2023"
// into its term strings, in listed order. The first word is a label.
func ParseTerms(text string) []string {
	var terms []string
	for _, term := range strings.Split(dropLabel(text), ", ") {
		if term = strings.TrimSpace(term); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// AssociateInstructors pairs instructor names with the terms they teach.
//
// termsText is the terms paragraph (see ParseTerms). instructorsText is a
// labelled paragraph grouping names by term as "name; name (Abbrev)"
// repeated, where Abbrev is the first word of a term ("Fall" for
// "Fall 2022"). Terms are consumed in order: the text before the term's
// "(Abbrev)" marker holds its names and the text after it is kept for the
// following terms. A term whose marker is absent gets no instructors and
// leaves the text untouched.
func AssociateInstructors(termsText, instructorsText string) []Instructor {
	instructors := make([]Instructor, 0)
	remaining := dropLabel(instructorsText)

	for _, term := range ParseTerms(termsText) {
		before, after, found := strings.Cut(remaining, "("+TermAbbrev(term)+")")
		if !found {
			continue
		}

		for _, group := range strings.Split(before, ";") {
			if name := displayName(group); name != "" {
				instructors = append(instructors, Instructor{Name: name, Term: term})
			}
		}

		remaining = strings.TrimSpace(after)
	}

	return instructors
}

// displayName rebuilds a name from its ", "-separated components, keeping
// their order ("Fortier, Jérôme" stays "Fortier, Jérôme").
func displayName(group string) string {
	var parts []string
	for _, part := range strings.Split(group, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
