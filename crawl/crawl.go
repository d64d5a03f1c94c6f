// Package crawl provides page fetching orchestration. It coordinates rate
// limited, retried fetches of book pages and catalog entries and hands the
// results to the parsers and the section extractor.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sharh"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched in parallel when
// BookFetcher.Concurrency is unset. The per-host limiter still spaces the
// requests out.
const DefaultConcurrency = 2

var _ sharh.PageFetcher = (*BookFetcher)(nil)

// BookFetcher fetches and parses the pages of one book concurrently and
// returns them in URL order.
type BookFetcher struct {
	Fetcher     sharh.Fetcher
	Parser      sharh.PageParser
	RateLimiter sharh.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	page     *sharh.Page
	err      error
}

// FetchPages fetches and parses every URL. The returned slice is aligned
// with urls; a page that failed after all retries is nil and its error is
// passed to progress. Only context cancellation fails the whole call.
func (b *BookFetcher) FetchPages(ctx context.Context, urls []string, progress sharh.FetchProgressFunc) ([]*sharh.Page, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				resultCh <- b.processURL(gctx, i, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	pages := make([]*sharh.Page, len(urls))
	completed := 0
	for result := range resultCh {
		completed++
		pages[result.position] = result.page

		if progress != nil {
			progress(sharh.FetchProgress{
				URL:       result.url,
				Completed: completed,
				Total:     len(urls),
				Error:     result.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pages, nil
}

// processURL fetches and parses a single URL.
func (b *BookFetcher) processURL(ctx context.Context, position int, url string) pageResult {
	result := pageResult{
		position: position,
		url:      url,
	}

	delays := b.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		if err := waitURL(ctx, b.RateLimiter, url); err != nil {
			return "", err
		}
		return b.Fetcher.Fetch(ctx, url)
	}

	html, err := FetchWithRetry(ctx, url, fetchFn, delays, b.OnRetry)
	if err != nil {
		result.err = err
		return result
	}

	blocks, err := b.Parser.ParseBlocks(html)
	if err != nil {
		result.err = fmt.Errorf("parse %s: %w", url, err)
		return result
	}

	result.page = &sharh.Page{
		Index:  position,
		URL:    url,
		Blocks: blocks,
	}
	return result
}
