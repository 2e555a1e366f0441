package catalog

import "context"

// Fetcher retrieves raw documents (HTML pages, XML feeds) from URLs.
type Fetcher interface {
	// Fetch returns the body of the document at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases resources held by the fetcher.
	Close() error
}
