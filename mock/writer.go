package mock

import (
	"context"

	"github.com/fwojciec/catalog"
)

var _ catalog.CourseWriter = (*CourseWriter)(nil)

// CourseWriter is a mock implementation of catalog.CourseWriter.
type CourseWriter struct {
	WriteCourseFn func(ctx context.Context, course *catalog.Course) error
}

func (w *CourseWriter) WriteCourse(ctx context.Context, course *catalog.Course) error {
	return w.WriteCourseFn(ctx, course)
}
