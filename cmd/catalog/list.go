package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter catalog.CourseFilter
	if c.Subject != "" {
		subject := strings.ToUpper(c.Subject)
		filter.Subject = &subject
	}
	if c.Term != "" {
		filter.Term = &c.Term
	}

	courses, err := deps.Courses.FindCourses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catalog.ErrorMessage(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(deps.Stdout, "No courses found. Use 'catalog sync' to fetch the catalog.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.AppendHeader(table.Row{"Course", "Title", "Credits", "Terms"})
	for _, course := range courses {
		t.AppendRow(table.Row{course.Key(), course.Title, course.Credits, strings.Join(course.Terms, ", ")})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	return nil
}
