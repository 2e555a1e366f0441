package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/catalog"
)

// Ensure LoggingExtractor implements catalog.Extractor.
var _ catalog.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with info-level logging.
type LoggingExtractor struct {
	next   catalog.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next catalog.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractCourseListings delegates to the wrapped extractor and logs the
// number of rows found.
func (e *LoggingExtractor) ExtractCourseListings(html string) (listings []catalog.CourseListing, ok bool, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract listings",
			"bytes", len(html),
			"count", len(listings),
			"container", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractCourseListings(html)
}

// ExtractCoursePage delegates to the wrapped extractor and logs the course
// it found.
func (e *LoggingExtractor) ExtractCoursePage(html string) (page *catalog.CoursePage, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html)}
		if page != nil {
			attrs = append(attrs,
				"course", page.Subject+" "+page.Code,
				"instructors", len(page.Instructors),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract page", attrs...)
	}(time.Now())
	return e.next.ExtractCoursePage(html)
}

// ExtractCourseSchedules delegates to the wrapped extractor and logs the
// number of blocks found.
func (e *LoggingExtractor) ExtractCourseSchedules(xml string) (schedules []catalog.Schedule, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract schedules",
			"bytes", len(xml),
			"count", len(schedules),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractCourseSchedules(xml)
}
