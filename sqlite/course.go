package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/catalog"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ catalog.CourseService = (*CourseService)(nil)

// CourseService implements catalog.CourseService using SQLite.
type CourseService struct {
	db *DB

	// Now returns the current time. Tests override it to observe timestamps.
	Now func() time.Time
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *DB) *CourseService {
	return &CourseService{db: db, Now: time.Now}
}

const courseColumns = `id, subject, code, title, credits, level, url, department, faculty, faculty_url,
	description, terms, instructors, prerequisites, corequisites, restrictions, schedule,
	content_hash, created_at, updated_at`

// hashCourse computes an xxHash over the extracted content of a course.
// Identity and timestamps do not contribute.
func hashCourse(c *catalog.Course) (string, error) {
	content := *c
	content.ID = ""
	content.ContentHash = ""
	content.CreatedAt = time.Time{}
	content.UpdatedAt = time.Time{}

	b, err := json.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("failed to encode course: %w", err)
	}

	h := xxhash.Sum64(b)
	sum := make([]byte, 8)
	for i := range sum {
		sum[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(sum), nil
}

// CreateCourse stores a course. A course with the same subject and code is
// replaced in place and keeps its ID and creation time; its update time only
// moves when the content hash changes. Storing a URL that belongs to a
// different course returns ECONFLICT.
func (s *CourseService) CreateCourse(ctx context.Context, course *catalog.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}
	course.Subject = strings.ToUpper(course.Subject)
	course.Code = strings.ToUpper(course.Code)

	hash, err := hashCourse(course)
	if err != nil {
		return err
	}

	now := s.Now().UTC().Truncate(time.Second)

	existing, err := s.FindCourseByCode(ctx, course.Subject, course.Code)
	switch {
	case catalog.ErrorCode(err) == catalog.ENOTFOUND:
		course.ID = uuid.New().String()
		course.CreatedAt = now
		course.UpdatedAt = now
	case err != nil:
		return err
	default:
		course.ID = existing.ID
		course.CreatedAt = existing.CreatedAt
		course.UpdatedAt = existing.UpdatedAt
		if existing.ContentHash != hash {
			course.UpdatedAt = now
		}
	}
	course.ContentHash = hash

	cols, err := encodeCourse(course)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO courses (`+courseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (subject, code) DO UPDATE SET
			title = excluded.title,
			credits = excluded.credits,
			level = excluded.level,
			url = excluded.url,
			department = excluded.department,
			faculty = excluded.faculty,
			faculty_url = excluded.faculty_url,
			description = excluded.description,
			terms = excluded.terms,
			instructors = excluded.instructors,
			prerequisites = excluded.prerequisites,
			corequisites = excluded.corequisites,
			restrictions = excluded.restrictions,
			schedule = excluded.schedule,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
	`, cols...)
	if errors.Is(err, sqlite3.CONSTRAINT_UNIQUE) {
		return catalog.Errorf(catalog.ECONFLICT, "course URL already stored for another course: %s", course.URL)
	}
	return err
}

// FindCourseByID retrieves a course by ID.
func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*catalog.Course, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courseColumns+" FROM courses WHERE id = ?", id)
	course, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, catalog.Errorf(catalog.ENOTFOUND, "course not found")
	}
	return course, err
}

// FindCourseByCode retrieves a course by subject and code. Subject matching
// is case-insensitive.
func (s *CourseService) FindCourseByCode(ctx context.Context, subject, code string) (*catalog.Course, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+courseColumns+" FROM courses WHERE subject = ? AND code = ?",
		strings.ToUpper(subject), strings.ToUpper(code))
	course, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, catalog.Errorf(catalog.ENOTFOUND, "course not found: %s %s", subject, code)
	}
	return course, err
}

// FindCourses retrieves courses matching the filter, ordered by subject and
// code.
func (s *CourseService) FindCourses(ctx context.Context, filter catalog.CourseFilter) ([]*catalog.Course, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + courseColumns + " FROM courses WHERE 1=1")

	if filter.Subject != nil {
		query.WriteString(" AND subject = ?")
		args = append(args, strings.ToUpper(*filter.Subject))
	}
	if filter.Term != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(courses.terms) WHERE json_each.value = ?)")
		args = append(args, *filter.Term)
	}

	query.WriteString(" ORDER BY subject ASC, code ASC")

	if filter.Offset > 0 && filter.Limit <= 0 {
		// SQLite requires a LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*catalog.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// DeleteCourse permanently removes a course.
func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return catalog.Errorf(catalog.ENOTFOUND, "course not found")
	}

	return nil
}

// encodeCourse returns the column values of a course in courseColumns order.
func encodeCourse(c *catalog.Course) ([]any, error) {
	lists := []any{c.Terms, c.Instructors, c.Prerequisites, c.Corequisites, c.Schedule}
	encoded := make([]string, len(lists))
	for i, v := range lists {
		s, err := encodeList(v)
		if err != nil {
			return nil, err
		}
		encoded[i] = s
	}

	var restrictions sql.NullString
	if c.Restrictions != nil {
		restrictions = sql.NullString{String: *c.Restrictions, Valid: true}
	}

	return []any{
		c.ID, c.Subject, c.Code, c.Title, c.Credits, c.Level, c.URL, c.Department, c.Faculty, c.FacultyURL,
		c.Description, encoded[0], encoded[1], encoded[2], encoded[3], restrictions, encoded[4],
		c.ContentHash, c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// encodeList encodes a slice as a JSON array. Nil slices encode as "[]".
func encodeList(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode course field: %w", err)
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCourse(row scanner) (*catalog.Course, error) {
	var c catalog.Course
	var terms, instructors, prerequisites, corequisites, schedule string
	var restrictions sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&c.ID, &c.Subject, &c.Code, &c.Title, &c.Credits, &c.Level, &c.URL,
		&c.Department, &c.Faculty, &c.FacultyURL, &c.Description, &terms, &instructors,
		&prerequisites, &corequisites, &restrictions, &schedule, &c.ContentHash,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	fields := []struct {
		name string
		data string
		dst  any
	}{
		{"terms", terms, &c.Terms},
		{"instructors", instructors, &c.Instructors},
		{"prerequisites", prerequisites, &c.Prerequisites},
		{"corequisites", corequisites, &c.Corequisites},
		{"schedule", schedule, &c.Schedule},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.data), f.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", f.name, err)
		}
	}

	if restrictions.Valid {
		c.Restrictions = &restrictions.String
	}

	var err error
	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &c, nil
}
