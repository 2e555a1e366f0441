package main

import (
	"fmt"

	"github.com/fwojciec/catalog"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return catalog.Errorf(catalog.EINVALID, "use --force to confirm deletion")
	}

	course, err := deps.Courses.FindCourseByCode(deps.Ctx, c.Subject, c.Code)
	if err != nil {
		reportFindError(deps, c.Subject, c.Code, err)
		return err
	}

	if err := deps.Courses.DeleteCourse(deps.Ctx, course.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catalog.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted course %s\n", course.Key())
	return nil
}
