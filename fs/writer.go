// Package fs exports courses as markdown files with YAML front matter.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/catalog"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// CoursePath returns the path of a course's file relative to the export
// root, e.g. "math/math-240.md".
func CoursePath(course *catalog.Course) string {
	subject := strings.ToLower(course.Subject)
	return filepath.Join(subject, subject+"-"+strings.ToLower(course.Code)+".md")
}

// frontMatter is the YAML header of an exported course.
type frontMatter struct {
	Course     string   `yaml:"course"`
	Title      string   `yaml:"title"`
	Credits    string   `yaml:"credits,omitempty"`
	Level      string   `yaml:"level,omitempty"`
	Department string   `yaml:"department,omitempty"`
	Faculty    string   `yaml:"faculty,omitempty"`
	Terms      []string `yaml:"terms,omitempty"`
	Source     string   `yaml:"source"`
	Updated    string   `yaml:"updated"`
}

// FormatCourse formats a course as markdown with YAML front matter.
func FormatCourse(course *catalog.Course) (string, error) {
	var b bytes.Buffer
	b.WriteString("---\n")

	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(frontMatter{
		Course:     course.Key(),
		Title:      course.Title,
		Credits:    course.Credits,
		Level:      course.Level,
		Department: course.Department,
		Faculty:    course.Faculty,
		Terms:      course.Terms,
		Source:     course.URL,
		Updated:    course.UpdatedAt.Format("2006-01-02"),
	}); err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s %s\n", course.Key(), course.Title)
	if course.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", course.Description)
	}

	if len(course.Instructors) > 0 {
		b.WriteString("\n## Instructors\n\n")
		for _, in := range course.Instructors {
			fmt.Fprintf(&b, "- %s (%s)\n", in.Name, in.Term)
		}
	}

	writeList(&b, "Prerequisites", course.Prerequisites)
	writeList(&b, "Corequisites", course.Corequisites)
	if course.Restrictions != nil {
		fmt.Fprintf(&b, "\n## Restrictions\n\n%s\n", *course.Restrictions)
	}

	if len(course.Schedule) > 0 {
		b.WriteString("\n## Schedule\n\n")
		rows := make([][]string, 0, len(course.Schedule))
		for _, s := range course.Schedule {
			rows = append(rows, []string{deref(s.Display), deref(s.Campus), deref(s.Location)})
		}
		writeTable(&b, []string{"Section", "Campus", "Location"}, rows)
	}

	return b.String(), nil
}

func writeList(b *bytes.Buffer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// writeTable writes a markdown table with cells padded to the display width
// of their column.
func writeTable(b *bytes.Buffer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(3, runewidth.StringWidth(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			b.WriteString(" " + cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)) + " |")
		}
		b.WriteString("\n")
	}

	writeRow(header)
	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}
	writeRow(separator)
	for _, row := range rows {
		writeRow(row)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// MarkerFile is written at the root of every committed export. Commit only
// replaces a non-empty directory that contains it.
const MarkerFile = ".catalog-export"

// Ensure Writer implements catalog.CourseWriter at compile time.
var _ catalog.CourseWriter = (*Writer)(nil)

// Writer exports courses into a directory with atomic replace semantics.
// Files are written to baseDir/name.tmp and moved to baseDir/name on
// Commit, so a failed export leaves the previous one in place.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a Writer exporting to baseDir/name.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// WriteCourse writes one course file to the pending export.
func (w *Writer) WriteCourse(ctx context.Context, course *catalog.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := course.Validate(); err != nil {
		return err
	}

	content, err := FormatCourse(course)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.tempDir(), CoursePath(course))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// Commit replaces the previous export with the pending one. A non-empty
// directory without MarkerFile is left alone and Commit returns ECONFLICT.
func (w *Writer) Commit() error {
	if err := w.checkReplaceable(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(w.tempDir(), MarkerFile), nil, 0644); err != nil {
		return err
	}
	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	return os.Rename(w.tempDir(), w.finalDir())
}

func (w *Writer) checkReplaceable() error {
	entries, err := os.ReadDir(w.finalDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	_, err = os.Stat(filepath.Join(w.finalDir(), MarkerFile))
	if errors.Is(err, os.ErrNotExist) {
		return catalog.Errorf(catalog.ECONFLICT, "refusing to replace %s: directory is not empty and holds no previous export", w.finalDir())
	}
	return err
}

// Abort discards the pending export.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
