package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for catalog detail URLs.
const (
	catalogExpectedURLs       = 10000
	catalogFalsePositiveRate  = 0.001
	defaultCatalogConcurrency = 2
)

// CatalogScraper reads a listing page and the detail page of every entry.
type CatalogScraper struct {
	Fetcher     sharh.Fetcher
	Parser      sharh.CatalogParser
	RateLimiter sharh.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// CatalogResult holds the scraped entries keyed by title.
type CatalogResult struct {
	Entries map[string]sharh.CatalogEntry
	Items   int // entries on the listing page
	Skipped int // duplicate detail URLs
	Failed  int // detail pages that could not be fetched or parsed
}

type detailResult struct {
	position int
	item     sharh.CatalogItem
	text     string
	err      error
}

// Scrape fetches listURL, then each distinct detail page it links to.
// Entries are keyed by title; when titles repeat, the later entry in list
// order wins. Failing to fetch the listing itself is an error; failed detail
// pages are counted and reported through progress.
func (s *CatalogScraper) Scrape(ctx context.Context, listURL string, progress sharh.FetchProgressFunc) (*CatalogResult, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	html, err := FetchWithRetry(ctx, listURL, s.fetch, delays, s.OnRetry)
	if err != nil {
		return nil, fmt.Errorf("fetch listing: %w", err)
	}

	items, err := s.Parser.ParseList(html, listURL)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	result := &CatalogResult{
		Entries: make(map[string]sharh.CatalogEntry),
		Items:   len(items),
	}

	seen := bloom.NewFilter(catalogExpectedURLs, catalogFalsePositiveRate)
	var unique []sharh.CatalogItem
	for _, item := range items {
		if seen.Seen(item.URL) {
			result.Skipped++
			continue
		}
		unique = append(unique, item)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultCatalogConcurrency
	}

	resultCh := make(chan detailResult, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, item := range unique {
			g.Go(func() error {
				resultCh <- s.processItem(gctx, i, item, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	details := make([]detailResult, len(unique))
	completed := 0
	for r := range resultCh {
		completed++
		details[r.position] = r
		if progress != nil {
			progress(sharh.FetchProgress{
				URL:       r.item.URL,
				Completed: completed,
				Total:     len(unique),
				Error:     r.err,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, d := range details {
		if d.err != nil {
			result.Failed++
			continue
		}
		result.Entries[d.item.Title] = sharh.CatalogEntry{Text: d.text, Notes: []string{}}
	}
	return result, nil
}

func (s *CatalogScraper) processItem(ctx context.Context, position int, item sharh.CatalogItem, delays []time.Duration) detailResult {
	result := detailResult{position: position, item: item}

	html, err := FetchWithRetry(ctx, item.URL, s.fetch, delays, s.OnRetry)
	if err != nil {
		result.err = err
		return result
	}

	text, err := s.Parser.ParseContent(html)
	if err != nil {
		result.err = fmt.Errorf("parse %s: %w", item.URL, err)
		return result
	}
	result.text = text
	return result
}

func (s *CatalogScraper) fetch(ctx context.Context, url string) (string, error) {
	if err := waitURL(ctx, s.RateLimiter, url); err != nil {
		return "", err
	}
	return s.Fetcher.Fetch(ctx, url)
}
