package sharh

import "context"

// Fetcher retrieves decoded HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its content as UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// FetchProgress reports progress during page fetching.
type FetchProgress struct {
	URL       string
	Completed int
	Total     int
	Error     error
}

// FetchProgressFunc is called as pages are processed.
type FetchProgressFunc func(FetchProgress)

// PageParser turns the HTML of one page into typed blocks.
type PageParser interface {
	ParseBlocks(html string) ([]Block, error)
}

// PageFetcher retrieves and parses the pages of one book.
// Implementations hide retry, rate limiting and concurrency. The returned
// slice is aligned with urls; pages that could not be fetched or parsed are
// nil and reported through progress.
type PageFetcher interface {
	FetchPages(ctx context.Context, urls []string, progress FetchProgressFunc) ([]*Page, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
