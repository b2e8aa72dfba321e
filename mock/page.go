package mock

import (
	"context"

	"github.com/fwojciec/webreduce"
)

var _ webreduce.PageConverter = (*PageConverter)(nil)

// PageConverter is a mock implementation of webreduce.PageConverter.
type PageConverter struct {
	ConvertFn    func(ctx context.Context, url string) (*webreduce.Page, error)
	ConvertAllFn func(ctx context.Context, urls []string, progress webreduce.ConvertProgressFunc) ([]*webreduce.Page, error)
}

func (c *PageConverter) Convert(ctx context.Context, url string) (*webreduce.Page, error) {
	return c.ConvertFn(ctx, url)
}

func (c *PageConverter) ConvertAll(ctx context.Context, urls []string, progress webreduce.ConvertProgressFunc) ([]*webreduce.Page, error) {
	return c.ConvertAllFn(ctx, urls, progress)
}

var _ webreduce.PageWriter = (*PageWriter)(nil)

// PageWriter is a mock implementation of webreduce.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *webreduce.Page) (string, error)
}

func (w *PageWriter) WritePage(ctx context.Context, page *webreduce.Page) (string, error) {
	return w.WritePageFn(ctx, page)
}

var _ webreduce.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of webreduce.PageCache.
type PageCache struct {
	GetFn func(ctx context.Context, url string) (string, error)
	PutFn func(ctx context.Context, url string, body string) error
}

func (c *PageCache) Get(ctx context.Context, url string) (string, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, url string, body string) error {
	return c.PutFn(ctx, url, body)
}
