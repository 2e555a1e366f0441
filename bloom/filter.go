// Package bloom provides probabilistic deduplication of course listing URLs.
package bloom

import (
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers which listing URLs have been seen. A false positive
// skips a course that was never seen; a false negative cannot happen.
// Filter is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Key normalizes a URL for deduplication: the fragment and any trailing
// slash are dropped, so "/courses/math-240/#top" and "/courses/math-240"
// are the same course.
func Key(url string) string {
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	return strings.TrimRight(url, "/")
}

// TestAndAdd records a URL and reports whether it might have been added
// before.
func (f *Filter) TestAndAdd(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(Key(url))
}

