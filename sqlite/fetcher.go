package sqlite

import (
	"context"

	"github.com/fwojciec/webreduce"
)

// Compile-time interface verification.
var _ webreduce.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher decorates a Fetcher with a PageCache. Repeat fetches of
// the same URL are served from the cache without touching the network.
type CachingFetcher struct {
	next  webreduce.Fetcher
	cache webreduce.PageCache
}

// NewCachingFetcher creates a CachingFetcher wrapping next.
func NewCachingFetcher(next webreduce.Fetcher, cache webreduce.PageCache) *CachingFetcher {
	return &CachingFetcher{next: next, cache: cache}
}

// Fetch returns the cached body when present; otherwise it delegates to
// the wrapped fetcher and caches the result. Cache write failures are
// not fatal to the fetch.
func (f *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, err := f.cache.Get(ctx, url)
	if err == nil {
		return body, nil
	}
	if webreduce.ErrorCode(err) != webreduce.ENOTFOUND {
		return "", err
	}

	body, err = f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	_ = f.cache.Put(ctx, url, body)

	return body, nil
}

// Close closes the wrapped fetcher.
func (f *CachingFetcher) Close() error {
	return f.next.Close()
}
