package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/fs"
)

// suggestMaxDistance is the largest Levenshtein distance between course
// codes for a stored course to be suggested.
const suggestMaxDistance = 1

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	course, err := deps.Courses.FindCourseByCode(deps.Ctx, c.Subject, c.Code)
	if err != nil {
		reportFindError(deps, c.Subject, c.Code, err)
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(course)
	}

	content, err := fs.FormatCourse(course)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(deps.Stdout, content)
	return err
}

// reportFindError prints a course lookup failure, suggesting a stored
// course with a similar code when the course does not exist.
func reportFindError(deps *Dependencies, subject, code string, err error) {
	if catalog.ErrorCode(err) != catalog.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catalog.ErrorMessage(err))
		return
	}

	fmt.Fprintf(deps.Stderr, "error: course %s %s not found.", strings.ToUpper(subject), strings.ToUpper(code))
	if key := suggestCourse(deps, subject, code); key != "" {
		fmt.Fprintf(deps.Stderr, " Did you mean %s?\n", key)
		return
	}
	fmt.Fprintln(deps.Stderr, " Use 'catalog list' to see stored courses.")
}

// suggestCourse returns the key of the stored course of the same subject
// whose code is most similar to code, or "" when none is similar enough.
func suggestCourse(deps *Dependencies, subject, code string) string {
	subject = strings.ToUpper(subject)
	courses, err := deps.Courses.FindCourses(deps.Ctx, catalog.CourseFilter{Subject: &subject})
	if err != nil {
		return ""
	}

	code = strings.ToUpper(code)
	best, bestDistance := "", suggestMaxDistance+1
	for _, course := range courses {
		if d := matchr.Levenshtein(code, course.Code); d < bestDistance {
			best, bestDistance = course.Key(), d
		}
	}
	return best
}
