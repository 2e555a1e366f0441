package catalog

// ListingExtractor converts a catalog search-results page into listings.
type ListingExtractor interface {
	// ExtractCourseListings returns the listing rows of the page with their
	// terms filtered to the recognized vocabulary. The bool result is false
	// when the page has no listing container, which is a valid "no results"
	// page; a container without rows returns an empty slice and true.
	// A malformed row fails the whole page.
	ExtractCourseListings(html string) ([]CourseListing, bool, error)
}

// PageExtractor converts a course detail page into a CoursePage.
type PageExtractor interface {
	// ExtractCoursePage returns ENOTFOUND naming the missing fragment when a
	// required field is absent.
	ExtractCoursePage(html string) (*CoursePage, error)
}

// ScheduleExtractor converts a schedule feed into schedule blocks.
type ScheduleExtractor interface {
	// ExtractCourseSchedules returns an empty slice for an error feed.
	// It fails with EINVALID only if the feed is not well-formed XML.
	ExtractCourseSchedules(xml string) ([]Schedule, error)
}

// Extractor groups the three entry points of the extraction pipeline.
type Extractor interface {
	ListingExtractor
	PageExtractor
	ScheduleExtractor
}
