package webreduce

import "context"

// Fetcher retrieves raw page bodies from URLs.
type Fetcher interface {
	// Fetch retrieves the body of the given absolute URL.
	// The context controls timeout and cancellation. Failures are
	// reported as EUNAVAILABLE application errors.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
