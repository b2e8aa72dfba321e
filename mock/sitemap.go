package mock

import (
	"context"

	"github.com/fwojciec/webreduce"
)

var _ webreduce.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of webreduce.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *webreduce.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *webreduce.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ webreduce.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of webreduce.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
