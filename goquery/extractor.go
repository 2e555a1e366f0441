package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catalog"
)

// Ensure Extractor implements the HTML entry points at compile time.
var (
	_ catalog.ListingExtractor = (*Extractor)(nil)
	_ catalog.PageExtractor    = (*Extractor)(nil)
)

// Extractor extracts course listings and course pages from catalog HTML.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Listing page selectors.
var (
	listingContainer  = MustCompile("div.view-content")
	listingRow        = MustCompile("div.views-row")
	listingDepartment = MustCompile(".views-field-field-dept-code .field-content")
	listingFaculty    = MustCompile(".views-field-field-faculty-code .field-content")
	listingLevel      = MustCompile(".views-field-level .field-content")
	listingTerms      = MustCompile(".views-field-terms .field-content")
	listingURL        = MustCompile(".views-field-field-course-title-long a[href]")
)

// ExtractCourseListings parses a search-results page. A missing listing
// container reports false; one malformed row fails the whole page.
func (e *Extractor) ExtractCourseListings(html string) ([]catalog.CourseListing, bool, error) {
	doc, err := parseFragment(html)
	if err != nil {
		return nil, false, err
	}

	content, ok := SelectOptional(doc.Selection, listingContainer)
	if !ok {
		return nil, false, nil
	}

	rows := SelectMany(content, listingRow)
	listings := make([]catalog.CourseListing, 0, len(rows))
	for i, row := range rows {
		listing, err := extractListing(row)
		if err != nil {
			return nil, false, fmt.Errorf("listing row %d: %w", i+1, err)
		}
		listings = append(listings, listing.FilterTerms())
	}

	return listings, true, nil
}

// extractListing converts one listing row. Terms are returned unfiltered.
func extractListing(row *goquery.Selection) (catalog.CourseListing, error) {
	var listing catalog.CourseListing
	var err error

	if listing.Department, err = SelectText(row, listingDepartment); err != nil {
		return catalog.CourseListing{}, err
	}
	if listing.Faculty, err = SelectText(row, listingFaculty); err != nil {
		return catalog.CourseListing{}, err
	}
	if listing.Level, err = SelectText(row, listingLevel); err != nil {
		return catalog.CourseListing{}, err
	}
	if listing.URL, err = SelectAttr(row, listingURL, "href"); err != nil {
		return catalog.CourseListing{}, err
	}

	// A term field may hold one label or a comma-separated list of them.
	listing.Terms = []string{}
	for _, field := range SelectMany(row, listingTerms) {
		for _, term := range strings.Split(field.Text(), ",") {
			if term = collapseSpace(term); term != "" {
				listing.Terms = append(listing.Terms, term)
			}
		}
	}

	return listing, nil
}
