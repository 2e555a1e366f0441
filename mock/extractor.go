package mock

import "github.com/fwojciec/catalog"

var _ catalog.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of catalog.Extractor.
type Extractor struct {
	ExtractCourseListingsFn  func(html string) ([]catalog.CourseListing, bool, error)
	ExtractCoursePageFn      func(html string) (*catalog.CoursePage, error)
	ExtractCourseSchedulesFn func(xml string) ([]catalog.Schedule, error)
}

func (e *Extractor) ExtractCourseListings(html string) ([]catalog.CourseListing, bool, error) {
	return e.ExtractCourseListingsFn(html)
}

func (e *Extractor) ExtractCoursePage(html string) (*catalog.CoursePage, error) {
	return e.ExtractCoursePageFn(html)
}

func (e *Extractor) ExtractCourseSchedules(xml string) ([]catalog.Schedule, error) {
	return e.ExtractCourseSchedulesFn(xml)
}
