package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkCreateCourse compares write performance between WAL and rollback
// journal modes for a sync-sized batch of course upserts.
func BenchmarkCreateCourse(b *testing.B) {
	const coursesPerSync = 100

	b.Run("rollback_journal", func(b *testing.B) {
		benchmarkCreateCourse(b, "DELETE", coursesPerSync)
	})

	b.Run("wal_mode", func(b *testing.B) {
		benchmarkCreateCourse(b, "WAL", coursesPerSync)
	})
}

func benchmarkCreateCourse(b *testing.B, journalMode string, coursesPerSync int) {
	b.Helper()

	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	ctx := context.Background()
	_, err := db.ExecContext(ctx, "PRAGMA journal_mode = "+journalMode)
	require.NoError(b, err)

	svc := sqlite.NewCourseService(db)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		// Later iterations update rows in place, as a repeated sync does.
		for j := 0; j < coursesPerSync; j++ {
			course := &catalog.Course{
				Subject:     "MATH",
				Code:        fmt.Sprintf("%03d", j),
				Title:       fmt.Sprintf("Course %d", j),
				URL:         fmt.Sprintf("/study/2022-2023/courses/math-%03d", j),
				Terms:       []string{"Fall 2022", "Winter 2023"},
				Description: fmt.Sprintf("Run %d of course %d. Lorem ipsum dolor sit amet.", i, j),
			}
			if err := svc.CreateCourse(ctx, course); err != nil {
				b.Fatal(err)
			}
		}
	}
}
