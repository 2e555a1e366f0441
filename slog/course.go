package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/catalog"
)

// Ensure LoggingCourseService implements catalog.CourseService.
var _ catalog.CourseService = (*LoggingCourseService)(nil)

// LoggingCourseService wraps a CourseService with logging of writes.
// Reads are delegated without logging.
type LoggingCourseService struct {
	next   catalog.CourseService
	logger *slog.Logger
}

// NewLoggingCourseService creates a new LoggingCourseService.
func NewLoggingCourseService(next catalog.CourseService, logger *slog.Logger) *LoggingCourseService {
	return &LoggingCourseService{next: next, logger: logger}
}

func (s *LoggingCourseService) CreateCourse(ctx context.Context, course *catalog.Course) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save course",
			"course", course.Key(),
			"id", course.ID,
			"hash", course.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCourse(ctx, course)
}

func (s *LoggingCourseService) FindCourseByID(ctx context.Context, id string) (*catalog.Course, error) {
	return s.next.FindCourseByID(ctx, id)
}

func (s *LoggingCourseService) FindCourseByCode(ctx context.Context, subject, code string) (*catalog.Course, error) {
	return s.next.FindCourseByCode(ctx, subject, code)
}

func (s *LoggingCourseService) FindCourses(ctx context.Context, filter catalog.CourseFilter) ([]*catalog.Course, error) {
	return s.next.FindCourses(ctx, filter)
}

func (s *LoggingCourseService) DeleteCourse(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete course",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteCourse(ctx, id)
}
