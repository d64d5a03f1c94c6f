package mock

import (
	"context"

	"github.com/fwojciec/sharh"
)

var _ sharh.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sharh.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ sharh.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of sharh.PageFetcher.
type PageFetcher struct {
	FetchPagesFn func(ctx context.Context, urls []string, progress sharh.FetchProgressFunc) ([]*sharh.Page, error)
}

func (f *PageFetcher) FetchPages(ctx context.Context, urls []string, progress sharh.FetchProgressFunc) ([]*sharh.Page, error) {
	return f.FetchPagesFn(ctx, urls, progress)
}

var _ sharh.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sharh.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
