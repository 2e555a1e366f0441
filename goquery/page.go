package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catalog"
)

// Course page selectors.
var (
	pageTitle       = MustCompile("h1#page-title")
	pageCatalog     = MustCompile("div.node-catalog")
	pageFacultyURL  = MustCompile("div.meta a[href]")
	pageDescription = MustCompile("div.content > p")
	pageTerms       = MustCompile("p.catalog-terms")
	pageInstructors = MustCompile("p.catalog-instructors")
	pageNotes       = MustCompile("ul.catalog-notes")
	pageNote        = MustCompile("li")
)

var (
	// titleRe matches "MATH 240 Discrete Structures (3 credits)".
	titleRe = regexp.MustCompile(`^([A-Z][A-Z0-9]{2,3}) (\d{3}[A-Z0-9]*) (.+?) ?\((\d+(?:\.\d+)?(?:-\d+(?:\.\d+)?)?) credits?\)$`)

	// descriptionLabelRe matches the leading "Mathematics & Statistics (Sci) :"
	// label of a course description. The label has a space before its colon;
	// "Basic concepts (part 1): ..." is not a label.
	descriptionLabelRe = regexp.MustCompile(`^[^:()]{1,100}\([^)]*\)\s+:\s*`)
)

// ExtractCoursePage parses a course detail page. The first missing required
// field fails the page.
func (e *Extractor) ExtractCoursePage(html string) (*catalog.CoursePage, error) {
	doc, err := parseFragment(html)
	if err != nil {
		return nil, err
	}

	var page catalog.CoursePage

	title, err := SelectText(doc.Selection, pageTitle)
	if err != nil {
		return nil, err
	}
	if page.Subject, page.Code, page.Title, page.Credits, err = parseTitle(title); err != nil {
		return nil, err
	}

	node, err := SelectSingle(doc.Selection, pageCatalog)
	if err != nil {
		return nil, err
	}

	if page.FacultyURL, err = SelectAttr(node, pageFacultyURL, "href"); err != nil {
		return nil, err
	}

	description, err := SelectText(node, pageDescription)
	if err != nil {
		return nil, err
	}
	page.Description = descriptionLabelRe.ReplaceAllString(description, "")

	if page.Instructors, err = extractInstructors(node); err != nil {
		return nil, err
	}
	page.Requirements = extractRequirements(node)

	return &page, nil
}

// parseTitle splits a page title into subject, code, title and credits.
func parseTitle(text string) (subject, code, title, credits string, err error) {
	m := titleRe.FindStringSubmatch(collapseSpace(text))
	if m == nil {
		return "", "", "", "", catalog.Errorf(catalog.EINVALID, "malformed course title: %q", text)
	}
	return m[1], m[2], m[3], m[4], nil
}

// extractInstructors pairs the instructors paragraph with the terms
// paragraph. Both paragraphs are required; an empty one yields no
// instructors.
func extractInstructors(node *goquery.Selection) ([]catalog.Instructor, error) {
	terms, err := SelectText(node, pageTerms)
	if err != nil {
		return nil, err
	}
	instructors, err := SelectText(node, pageInstructors)
	if err != nil {
		return nil, err
	}
	return catalog.AssociateInstructors(terms, instructors), nil
}

// extractRequirements classifies each catalog note. A page without notes
// has empty requirements.
func extractRequirements(node *goquery.Selection) catalog.Requirements {
	list, ok := SelectOptional(node, pageNotes)
	if !ok {
		return catalog.Requirements{}
	}

	var notes []string
	for _, item := range SelectMany(list, pageNote) {
		if note := strings.TrimSpace(item.Text()); note != "" {
			notes = append(notes, note)
		}
	}
	return catalog.ParseRequirements(notes)
}
