package webreduce

import "context"

// Reducer reduces raw HTML to a compact structural tree.
// Reduction never fails on malformed markup: every degenerate input
// (missing root, ragged tables, absent attributes) has a defined
// degraded output.
type Reducer interface {
	// Reduce parses raw HTML and returns the reduced tree rooted at
	// the document's html element. When no html element exists the
	// result is a placeholder root node, not an error.
	Reduce(html string) (*Node, error)
}

// Expander fills in the Subpage field of anchor nodes by fetching and
// reducing each link target exactly once (one-hop expansion).
type Expander interface {
	// Expand mutates root in place. Per-link resolution and fetch
	// failures leave the corresponding Subpage absent and never abort
	// the traversal.
	Expand(ctx context.Context, root *Node, baseURL string) error
}

// DomainLimiter provides per-domain rate limiting at the fetch boundary.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
