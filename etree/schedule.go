package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/catalog"
)

// Ensure ScheduleExtractor implements catalog.ScheduleExtractor.
var _ catalog.ScheduleExtractor = (*ScheduleExtractor)(nil)

// Schedule feed queries.
var (
	scheduleErrors = MustCompile("//errors")
	scheduleError  = MustCompile("./error")
	scheduleBlock  = MustCompile("//block")
)

// ScheduleExtractor extracts meeting blocks from the class schedule feed.
type ScheduleExtractor struct{}

// NewScheduleExtractor creates a new ScheduleExtractor.
func NewScheduleExtractor() *ScheduleExtractor {
	return &ScheduleExtractor{}
}

// ExtractCourseSchedules returns one Schedule per block in the feed, in
// document order. A feed that reports errors has no schedule and yields an
// empty result rather than an error.
func (s *ScheduleExtractor) ExtractCourseSchedules(xml string) ([]catalog.Schedule, error) {
	doc, err := parseDocument(xml)
	if err != nil {
		return nil, err
	}

	if reportsErrors(&doc.Element) {
		return []catalog.Schedule{}, nil
	}

	blocks := SelectMany(&doc.Element, scheduleBlock)
	schedules := make([]catalog.Schedule, 0, len(blocks))
	for _, block := range blocks {
		schedules = append(schedules, scheduleFromBlock(block))
	}
	return schedules, nil
}

// reportsErrors reports whether the errors container holds any error node.
// A feed without the container reports none.
func reportsErrors(root *etree.Element) bool {
	container, ok := SelectOptional(root, scheduleErrors)
	if !ok {
		return false
	}
	return len(SelectMany(container, scheduleError)) > 0
}

func scheduleFromBlock(block *etree.Element) catalog.Schedule {
	display := SelectValue(block, "disp")
	if display == nil {
		display = SelectValue(block, "display")
	}
	return catalog.Schedule{
		Campus:   SelectValue(block, "campus"),
		Display:  display,
		Location: SelectValue(block, "location"),
	}
}
