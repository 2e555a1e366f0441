package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/catalog"
	main "github.com/fwojciec/catalog/cmd/catalog"
	"github.com/fwojciec/catalog/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const coursePage = `<html><body>
<h1 id="page-title">COMP 250 Introduction to Computer Science (3 credits)</h1>
<div class="node node-catalog">
	<div class="meta"><a href="/study/2022-2023/faculties/science/">Faculty of Science</a></div>
	<div class="content">
		<p>Computer Science (Sci) : Mathematical tools and data structures.</p>
		<p class="catalog-terms">Terms: Fall 2022</p>
		<p class="catalog-instructors">Instructors: Waldispühl, Jérôme; Alberini, Giulia (Fall)</p>
	</div>
</div>
</body></html>`

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints an extracted course page as JSON", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, t.TempDir(), "page.html", coursePage)
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: main.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Kind: "page", File: file}
		err := cmd.Run(deps)

		require.NoError(t, err)
		var page catalog.CoursePage
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &page))
		assert.Equal(t, "COMP", page.Subject)
		assert.Equal(t, "250", page.Code)
		assert.Equal(t, "Introduction to Computer Science", page.Title)
		assert.Equal(t, "Mathematical tools and data structures.", page.Description)
		assert.Equal(t, []catalog.Instructor{
			{Name: "Waldispühl, Jérôme", Term: "Fall 2022"},
			{Name: "Alberini, Giulia", Term: "Fall 2022"},
		}, page.Instructors)
	})

	t.Run("prints null for a page without listings", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, t.TempDir(), "search.html", `<html><body><p>No results</p></body></html>`)
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: main.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Kind: "listings", File: file}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "null\n", stdout.String())
	})

	t.Run("reports extraction errors by message", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, t.TempDir(), "page.html", `<html><body><p>moved</p></body></html>`)
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Extractor: main.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Kind: "page", File: file}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, catalog.ENOTFOUND, catalog.ErrorCode(err))
		assert.Contains(t, stderr.String(), "h1#page-title")
	})

	t.Run("delegates schedules to the extractor", func(t *testing.T) {
		t.Parallel()

		file := writeFile(t, t.TempDir(), "feed.xml", "<feed/>")
		var got string
		extractor := &mock.Extractor{
			ExtractCourseSchedulesFn: func(xml string) ([]catalog.Schedule, error) {
				got = xml
				return []catalog.Schedule{}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: extractor,
		}

		cmd := &main.ExtractCmd{Kind: "schedules", File: file}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "<feed/>", got)
		assert.Equal(t, "[]\n", stdout.String())
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Extractor: main.NewExtractor(),
		}

		cmd := &main.ExtractCmd{Kind: "page", File: filepath.Join(t.TempDir(), "nope.html")}
		err := cmd.Run(deps)

		require.Error(t, err)
	})
}
