package mock

import (
	"context"

	"github.com/fwojciec/catalog"
)

var _ catalog.CourseService = (*CourseService)(nil)

// CourseService is a mock implementation of catalog.CourseService.
type CourseService struct {
	CreateCourseFn     func(ctx context.Context, course *catalog.Course) error
	FindCourseByIDFn   func(ctx context.Context, id string) (*catalog.Course, error)
	FindCourseByCodeFn func(ctx context.Context, subject, code string) (*catalog.Course, error)
	FindCoursesFn      func(ctx context.Context, filter catalog.CourseFilter) ([]*catalog.Course, error)
	DeleteCourseFn     func(ctx context.Context, id string) error
}

func (s *CourseService) CreateCourse(ctx context.Context, course *catalog.Course) error {
	return s.CreateCourseFn(ctx, course)
}

func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*catalog.Course, error) {
	return s.FindCourseByIDFn(ctx, id)
}

func (s *CourseService) FindCourseByCode(ctx context.Context, subject, code string) (*catalog.Course, error) {
	return s.FindCourseByCodeFn(ctx, subject, code)
}

func (s *CourseService) FindCourses(ctx context.Context, filter catalog.CourseFilter) ([]*catalog.Course, error) {
	return s.FindCoursesFn(ctx, filter)
}

func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	return s.DeleteCourseFn(ctx, id)
}
