package crawl

import (
	"sync"

	"github.com/fwojciec/catalog"
	"github.com/fwojciec/catalog/bloom"
)

// Compile-time interface verification.
var _ catalog.ListingFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO of course listings with Bloom filter
// deduplication by listing URL. Search pages overlap when the catalog
// reorders results between requests, so the same course can be listed
// twice in one sync.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []catalog.CourseListing
}

// NewFrontier creates a new Frontier sized for n expected listings
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push queues a listing. Returns false if its URL has already been seen.
func (f *Frontier) Push(listing catalog.CourseListing) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.TestAndAdd(listing.URL) {
		return false
	}
	f.queue = append(f.queue, listing)
	return true
}

// Pop returns the oldest queued listing.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (catalog.CourseListing, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return catalog.CourseListing{}, false
	}
	listing := f.queue[0]
	f.queue[0] = catalog.CourseListing{}
	f.queue = f.queue[1:]
	return listing, true
}

// Len returns the number of queued listings.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
