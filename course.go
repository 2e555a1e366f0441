package catalog

import (
	"context"
	"time"
)

// Course is the merged, persisted course record: a course page combined with
// its listing row and its schedule blocks.
type Course struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Credits       string       `json:"credits"`
	Subject       string       `json:"subject"`
	Code          string       `json:"code"`
	Level         string       `json:"level"`
	URL           string       `json:"url"`
	Department    string       `json:"department"`
	Faculty       string       `json:"faculty"`
	FacultyURL    string       `json:"facultyUrl"`
	Terms         []string     `json:"terms"`
	Description   string       `json:"description"`
	Instructors   []Instructor `json:"instructors"`
	Prerequisites []string     `json:"prerequisites"`
	Corequisites  []string     `json:"corequisites"`
	Restrictions  *string      `json:"restrictions,omitempty"`
	Schedule      []Schedule   `json:"schedule"`
	ContentHash   string       `json:"contentHash"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// NewCourse merges the extraction outputs for one course. Identity, hash and
// timestamps are left for storage to assign.
func NewCourse(listing CourseListing, page *CoursePage, schedules []Schedule) *Course {
	return &Course{
		Title:         page.Title,
		Credits:       page.Credits,
		Subject:       page.Subject,
		Code:          page.Code,
		Level:         listing.Level,
		URL:           listing.URL,
		Department:    listing.Department,
		Faculty:       listing.Faculty,
		FacultyURL:    page.FacultyURL,
		Terms:         listing.Terms,
		Description:   page.Description,
		Instructors:   page.Instructors,
		Prerequisites: page.Requirements.Prerequisites,
		Corequisites:  page.Requirements.Corequisites,
		Restrictions:  page.Requirements.Restrictions,
		Schedule:      schedules,
	}
}

// Key returns the "SUBJ CODE" identifier of the course, e.g. "MATH 240".
func (c *Course) Key() string {
	return c.Subject + " " + c.Code
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if c.Subject == "" {
		return Errorf(EINVALID, "course subject required")
	}
	if c.Code == "" {
		return Errorf(EINVALID, "course code required")
	}
	if c.URL == "" {
		return Errorf(EINVALID, "course URL required")
	}
	return nil
}

// CourseService represents a service for managing courses.
type CourseService interface {
	// CreateCourse stores a course. A course with the same subject and code
	// is replaced in place, keeping its ID.
	CreateCourse(ctx context.Context, course *Course) error

	// FindCourseByID retrieves a course by ID.
	// Returns ENOTFOUND if course does not exist.
	FindCourseByID(ctx context.Context, id string) (*Course, error)

	// FindCourseByCode retrieves a course by subject and code.
	// Returns ENOTFOUND if course does not exist.
	FindCourseByCode(ctx context.Context, subject, code string) (*Course, error)

	// FindCourses retrieves courses matching the filter.
	FindCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)

	// DeleteCourse permanently removes a course.
	// Returns ENOTFOUND if course does not exist.
	DeleteCourse(ctx context.Context, id string) error
}

// CourseFilter represents a filter for FindCourses.
type CourseFilter struct {
	Subject *string `json:"subject"`
	Term    *string `json:"term"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CourseWriter writes courses to an export target.
type CourseWriter interface {
	WriteCourse(ctx context.Context, course *Course) error
}
