package catalog

import "context"

// ListingFrontier queues course listings for processing, dropping listings
// whose URL has already been queued.
type ListingFrontier interface {
	// Push adds a listing to the frontier.
	// Returns false if its URL has already been seen.
	Push(listing CourseListing) bool

	// Pop returns the next listing in insertion order.
	// Returns false if the frontier is empty.
	Pop() (CourseListing, bool)

	// Len returns the number of queued listings.
	Len() int
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
