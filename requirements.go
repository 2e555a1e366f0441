package catalog

import (
	"regexp"
	"strings"
)

// RequirementKind classifies one catalog note.
type RequirementKind int

// Requirement kinds. Unrecognized notes are dropped.
const (
	RequirementUnrecognized RequirementKind = iota
	RequirementPrerequisite
	RequirementCorequisite
	RequirementRestriction
)

// String returns the lowercase name of the kind.
func (k RequirementKind) String() string {
	switch k {
	case RequirementPrerequisite:
		return "prerequisite"
	case RequirementCorequisite:
		return "corequisite"
	case RequirementRestriction:
		return "restriction"
	}
	return "unrecognized"
}

// Requirement is one classified catalog note: its kind and the text that
// follows the label.
type Requirement struct {
	Kind    RequirementKind
	Payload string
}

// Requirements aggregates the prerequisite, corequisite and restriction
// notes of a course.
type Requirements struct {
	Prerequisites []string `json:"prerequisites"`
	Corequisites  []string `json:"corequisites"`
	Restrictions  *string  `json:"restrictions,omitempty"`
}

var (
	// noteLabelRe matches a leading label such as "Prerequisite(s):",
	// "Co-requisites -" or "RESTRICTION".
	noteLabelRe = regexp.MustCompile(`(?i)^\s*(pre-?requisite|co-?requisite|restriction)s?\b\s*(?:\(s\))?\s*[:.\-]?\s*`)

	// conjunctionRe separates course codes in a requirement payload.
	conjunctionRe = regexp.MustCompile(`(?i)\s*(?:[,;]|\band\b|\bor\b)\s*`)

	// courseCodeRe matches the syntactic shape of a course code, e.g.
	// "MATH 133" or "AERO 460D1".
	courseCodeRe = regexp.MustCompile(`\b[A-Z][A-Z0-9]{2,3}\s+\d{3}(?:[A-Z]\d?)?\b`)
)

// ClassifyNote classifies a catalog note by its label prefix. Matching is
// case-insensitive and tolerates a hyphen, an "(s)" suffix and trailing
// punctuation.
func ClassifyNote(note string) Requirement {
	m := noteLabelRe.FindStringSubmatchIndex(note)
	if m == nil {
		return Requirement{Kind: RequirementUnrecognized, Payload: normalizeSpace(note)}
	}

	label := strings.ReplaceAll(strings.ToLower(note[m[2]:m[3]]), "-", "")
	payload := normalizeSpace(note[m[1]:])

	switch label {
	case "prerequisite":
		return Requirement{Kind: RequirementPrerequisite, Payload: payload}
	case "corequisite":
		return Requirement{Kind: RequirementCorequisite, Payload: payload}
	default:
		return Requirement{Kind: RequirementRestriction, Payload: payload}
	}
}

// ParseCourseCodes splits a requirement payload on conjunctions ("," ";"
// "and" "or") and returns the course codes it names, in order. Repeated
// codes are kept.
func ParseCourseCodes(payload string) []string {
	var codes []string
	for _, token := range conjunctionRe.Split(payload, -1) {
		for _, code := range courseCodeRe.FindAllString(token, -1) {
			codes = append(codes, normalizeSpace(code))
		}
	}
	return codes
}

// Add folds a classified note into the requirements. Restriction payloads
// accumulate into one space-separated block; unrecognized notes are ignored.
func (r *Requirements) Add(req Requirement) {
	switch req.Kind {
	case RequirementPrerequisite:
		r.Prerequisites = append(r.Prerequisites, ParseCourseCodes(req.Payload)...)
	case RequirementCorequisite:
		r.Corequisites = append(r.Corequisites, ParseCourseCodes(req.Payload)...)
	case RequirementRestriction:
		if req.Payload == "" {
			return
		}
		if r.Restrictions == nil {
			restrictions := req.Payload
			r.Restrictions = &restrictions
			return
		}
		joined := *r.Restrictions + " " + req.Payload
		r.Restrictions = &joined
	}
}

// ParseRequirements classifies each note in document order and aggregates
// the result.
func ParseRequirements(notes []string) Requirements {
	var r Requirements
	for _, note := range notes {
		r.Add(ClassifyNote(note))
	}
	return r
}
