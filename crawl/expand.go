// Package crawl provides page conversion orchestration: the full
// fetch-reduce-expand pipeline for single URLs and batches, one-hop
// subpage expansion, fetch retry, and per-domain rate limiting.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/webreduce"
	"golang.org/x/sync/errgroup"
)

// Ensure Expander implements webreduce.Expander at compile time.
var _ webreduce.Expander = (*Expander)(nil)

// Expander fills the Subpage field of every anchor node in a reduced
// tree by fetching and reducing its link target exactly once.
type Expander struct {
	Fetcher webreduce.Fetcher
	Reducer webreduce.Reducer

	// Config supplies the allowed link schemes. Nil means defaults.
	Config *webreduce.Config

	// Limiter, when set, rate limits fetches per target domain.
	Limiter webreduce.DomainLimiter

	// Concurrency bounds concurrent link fetches. Values <= 1 process
	// the traversal one anchor at a time.
	Concurrency int

	// RetryDelays enables fetch retry with backoff when non-empty.
	// Empty means a single attempt per URL.
	RetryDelays []time.Duration
}

// Expand mutates root in place. Every node in the tree is visited
// exactly once via an explicit stack; table record sets are leaves for
// the traversal. Per-link resolution and fetch failures leave the
// corresponding Subpage absent and never abort the traversal. Attached
// subpages are never themselves expanded.
func (e *Expander) Expand(ctx context.Context, root *webreduce.Node, baseURL string) error {
	if root == nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return webreduce.Errorf(webreduce.EINVALID, "invalid base URL %q", baseURL)
	}

	anchors := collectAnchors(root)

	if e.Concurrency <= 1 {
		for _, a := range anchors {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			e.expandAnchor(ctx, a, base)
		}
		return nil
	}

	// Each anchor node is exclusively owned by its task, so concurrent
	// expansion needs no locking and produces identical trees.
	g := new(errgroup.Group)
	g.SetLimit(e.Concurrency)
	for _, a := range anchors {
		g.Go(func() error {
			e.expandAnchor(ctx, a, base)
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

// collectAnchors visits every node exactly once with an explicit stack
// and returns the anchor nodes carrying a link target. Subpage trees are
// not pushed: expansion is exactly one hop from the root of expansion.
func collectAnchors(root *webreduce.Node) []*webreduce.Node {
	var anchors []*webreduce.Node
	stack := []*webreduce.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Tag == webreduce.AnchorTag && n.Href != "" {
			anchors = append(anchors, n)
		}
		for _, c := range n.Children {
			if child, ok := c.(*webreduce.Node); ok {
				stack = append(stack, child)
			}
		}
	}
	return anchors
}

// expandAnchor resolves, fetches, and reduces a single link target.
// All failures are absorbed: the anchor is simply left without a
// subpage.
func (e *Expander) expandAnchor(ctx context.Context, n *webreduce.Node, base *url.URL) {
	ref, err := url.Parse(n.Href)
	if err != nil {
		return
	}
	resolved := base.ResolveReference(ref)
	if !e.config().AllowsScheme(resolved.Scheme) {
		// Disallowed schemes are skipped without a fetch attempt.
		return
	}

	if e.Limiter != nil {
		if err := e.Limiter.Wait(ctx, resolved.Host); err != nil {
			return
		}
	}

	target := resolved.String()
	var body string
	if len(e.RetryDelays) > 0 {
		body, err = FetchWithRetryDelays(ctx, target, e.Fetcher.Fetch, nil, e.RetryDelays)
	} else {
		body, err = e.Fetcher.Fetch(ctx, target)
	}
	if err != nil {
		return
	}

	sub, err := e.Reducer.Reduce(body)
	if err != nil {
		return
	}
	n.Subpage = sub
}

func (e *Expander) config() *webreduce.Config {
	if e.Config != nil {
		return e.Config
	}
	return webreduce.DefaultConfig()
}
