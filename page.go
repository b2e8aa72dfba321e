package webreduce

import (
	"context"
	"time"
)

// Page is one converted page: a source URL and its reduced tree.
type Page struct {
	URL       string
	Tree      *Node
	FetchedAt time.Time
}

// ConvertProgress reports progress during batch conversion.
type ConvertProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// ConvertProgressFunc is called as batch items complete.
type ConvertProgressFunc func(ConvertProgress)

// PageConverter runs the full pipeline for a URL: fetch the root page,
// reduce it, and optionally expand its links one hop.
type PageConverter interface {
	// Convert processes a single URL. A root fetch failure is fatal to
	// this call only.
	Convert(ctx context.Context, url string) (*Page, error)

	// ConvertAll processes independent URLs. A failed item never
	// prevents the remaining items from producing a normal result;
	// failures are reported through the progress callback and the
	// returned slice holds the successful pages.
	ConvertAll(ctx context.Context, urls []string, progress ConvertProgressFunc) ([]*Page, error)
}

// PageWriter persists converted pages.
type PageWriter interface {
	// WritePage serializes the page's tree as single-line JSON and
	// writes it to storage, returning the name it was stored under.
	WritePage(ctx context.Context, page *Page) (name string, err error)
}

// PageCache stores fetched page bodies keyed by URL.
type PageCache interface {
	// Get returns the cached body for a URL.
	// Returns ENOTFOUND if the URL has not been cached.
	Get(ctx context.Context, url string) (string, error)

	// Put stores the body for a URL, replacing any previous entry.
	Put(ctx context.Context, url string, body string) error
}
