package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_Push_rejects_duplicate_URLs(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	listing := catalog.CourseListing{URL: "https://www.mcgill.ca/study/2022-2023/courses/math-240"}

	assert.True(t, f.Push(listing), "first push should succeed")
	assert.False(t, f.Push(listing), "duplicate URL should be rejected")

	listing.URL += "/"
	assert.False(t, f.Push(listing), "trailing slash should not make a new URL")
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Pop_returns_listings_in_insertion_order(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push(catalog.CourseListing{URL: "/courses/comp-202"})
	f.Push(catalog.CourseListing{URL: "/courses/math-133"})
	f.Push(catalog.CourseListing{URL: "/courses/math-240"})

	for _, want := range []string{"/courses/comp-202", "/courses/math-133", "/courses/math-240"} {
		listing, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, listing.URL)
	}

	_, ok := f.Pop()
	assert.False(t, ok, "empty frontier should report false")
}

func TestFrontier_popped_URLs_stay_seen(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(1000, 0.01)

	f.Push(catalog.CourseListing{URL: "/courses/math-240"})
	f.Pop()

	assert.False(t, f.Push(catalog.CourseListing{URL: "/courses/math-240"}))
	assert.Equal(t, 0, f.Len())
}

func TestFrontier_concurrent_access(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(10000, 0.01)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			f.Push(catalog.CourseListing{URL: fmt.Sprintf("/courses/math-%03d", n)})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, f.Len())

	popped := 0
	for {
		if _, ok := f.Pop(); !ok {
			break
		}
		popped++
	}
	assert.Equal(t, 100, popped)
}
