package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourseWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ catalog.CourseWriter = &mock.CourseWriter{}
}

func TestCourseWriter_WriteCourse(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteCourseFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *catalog.Course
		w := &mock.CourseWriter{
			WriteCourseFn: func(_ context.Context, course *catalog.Course) error {
				calledWith = course
				return nil
			},
		}

		course := &catalog.Course{Subject: "MATH", Code: "240", URL: "/math-240"}

		err := w.WriteCourse(context.Background(), course)

		require.NoError(t, err)
		assert.Equal(t, course, calledWith)
	})
}
