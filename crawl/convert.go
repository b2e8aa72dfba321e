package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/webreduce"
	"golang.org/x/sync/errgroup"
)

// Ensure Converter implements webreduce.PageConverter at compile time.
var _ webreduce.PageConverter = (*Converter)(nil)

// Converter runs the conversion pipeline for URLs: fetch the root page,
// reduce it, and optionally expand its links one hop. The steps for a
// single URL are strictly sequential; independent batch items run
// concurrently up to Concurrency, each owning its tree exclusively.
type Converter struct {
	Fetcher webreduce.Fetcher
	Reducer webreduce.Reducer

	// Expander is consulted only when Config.ExpandSubpages is set.
	Expander webreduce.Expander

	// Config controls reduction and expansion. Nil means defaults.
	Config *webreduce.Config

	// RateLimiter, when set, rate limits root page fetches per domain.
	RateLimiter webreduce.DomainLimiter

	// Concurrency bounds concurrent batch items. Defaults to 1.
	Concurrency int

	// RetryDelays enables root fetch retry with backoff when non-empty.
	RetryDelays []time.Duration
}

// Convert processes a single URL. A root fetch failure is fatal to this
// call only and surfaces as an EUNAVAILABLE error.
func (c *Converter) Convert(ctx context.Context, rawURL string) (*webreduce.Page, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, webreduce.Errorf(webreduce.EINVALID, "invalid URL %q", rawURL)
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			return nil, err
		}
	}

	var body string
	if len(c.RetryDelays) > 0 {
		body, err = FetchWithRetryDelays(ctx, rawURL, c.Fetcher.Fetch, nil, c.RetryDelays)
	} else {
		body, err = c.Fetcher.Fetch(ctx, rawURL)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch root page: %w", err)
	}

	tree, err := c.Reducer.Reduce(body)
	if err != nil {
		return nil, err
	}

	if c.config().ExpandSubpages && c.Expander != nil {
		if err := c.Expander.Expand(ctx, tree, rawURL); err != nil {
			return nil, err
		}
	}

	return &webreduce.Page{
		URL:       rawURL,
		Tree:      tree,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// ConvertAll processes independent URLs. A failed item is reported
// through the progress callback and never prevents the remaining items
// from producing a normal result. The returned slice holds the
// successful pages in input order.
func (c *Converter) ConvertAll(ctx context.Context, urls []string, progress webreduce.ConvertProgressFunc) ([]*webreduce.Page, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]*webreduce.Page, len(urls))
	var completed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			page, err := c.Convert(ctx, u)
			done := completed.Add(1)
			if progress != nil {
				progress(webreduce.ConvertProgress{
					URL:       u,
					Completed: int(done),
					Total:     len(urls),
					Error:     err,
				})
			}
			if err == nil {
				results[i] = page
			}
			// Item failures are absorbed so sibling items keep going.
			return nil
		})
	}
	_ = g.Wait()

	pages := make([]*webreduce.Page, 0, len(urls))
	for _, p := range results {
		if p != nil {
			pages = append(pages, p)
		}
	}
	return pages, ctx.Err()
}

func (c *Converter) config() *webreduce.Config {
	if c.Config != nil {
		return c.Config
	}
	return webreduce.DefaultConfig()
}
