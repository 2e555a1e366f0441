package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/fs"
)

// exportBatchSize is the number of courses read per query during export.
const exportBatchSize = 500

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	dir := filepath.Clean(c.Dir)
	writer := fs.NewWriter(filepath.Dir(dir), filepath.Base(dir))

	n, err := c.export(deps, writer)
	if err != nil {
		_ = writer.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", catalog.ErrorMessage(err))
		return err
	}
	if err := writer.Commit(); err != nil {
		_ = writer.Abort()
		if catalog.ErrorCode(err) == catalog.EINTERNAL {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", catalog.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d courses to %s\n", n, dir)
	return nil
}

func (c *ExportCmd) export(deps *Dependencies, writer catalog.CourseWriter) (int, error) {
	filter := catalog.CourseFilter{Limit: exportBatchSize}
	if c.Subject != "" {
		subject := strings.ToUpper(c.Subject)
		filter.Subject = &subject
	}

	var n int
	for {
		courses, err := deps.Courses.FindCourses(deps.Ctx, filter)
		if err != nil {
			return n, err
		}
		for _, course := range courses {
			if err := writer.WriteCourse(deps.Ctx, course); err != nil {
				return n, fmt.Errorf("%s: %w", course.Key(), err)
			}
			n++
		}
		if len(courses) < exportBatchSize {
			return n, nil
		}
		filter.Offset += exportBatchSize
	}
}
