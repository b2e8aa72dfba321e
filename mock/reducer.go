package mock

import (
	"context"

	"github.com/fwojciec/webreduce"
)

var _ webreduce.Reducer = (*Reducer)(nil)

// Reducer is a mock implementation of webreduce.Reducer.
type Reducer struct {
	ReduceFn func(html string) (*webreduce.Node, error)
}

func (r *Reducer) Reduce(html string) (*webreduce.Node, error) {
	return r.ReduceFn(html)
}

var _ webreduce.Expander = (*Expander)(nil)

// Expander is a mock implementation of webreduce.Expander.
type Expander struct {
	ExpandFn func(ctx context.Context, root *webreduce.Node, baseURL string) error
}

func (e *Expander) Expand(ctx context.Context, root *webreduce.Node, baseURL string) error {
	return e.ExpandFn(ctx, root, baseURL)
}
