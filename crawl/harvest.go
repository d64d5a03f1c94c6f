package crawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/sharh"
)

// Defaults for the Nafahat al-Wilaya explanation books.
const (
	DefaultBaseURL     = "http://gadir.free.fr/Ar/imamali/Nhj/Nefhatul_Velaye/7/book_39"
	DefaultPagePattern = "%s/NAFAHATVELG%02d/%02d.html"
	DefaultPages       = 28
)

// DefaultBooks returns the book numbers harvested by default.
func DefaultBooks() []int {
	return []int{1, 2, 3, 4, 5}
}

// BookSource describes where the pages of each book live.
type BookSource struct {
	BaseURL string
	// Pattern is a fmt format taking the base URL, the book number and the
	// page number, in that order.
	Pattern string
	Books   []int
	Pages   int
}

// DefaultBookSource returns the source of the Nafahat al-Wilaya books.
func DefaultBookSource() BookSource {
	return BookSource{
		BaseURL: DefaultBaseURL,
		Pattern: DefaultPagePattern,
		Books:   DefaultBooks(),
		Pages:   DefaultPages,
	}
}

// Validate returns an error if the source cannot produce page URLs.
func (s BookSource) Validate() error {
	if s.BaseURL == "" {
		return sharh.Errorf(sharh.EINVALID, "book source base URL required")
	}
	if s.Pattern == "" {
		return sharh.Errorf(sharh.EINVALID, "book source pattern required")
	}
	if len(s.Books) == 0 {
		return sharh.Errorf(sharh.EINVALID, "book source needs at least one book")
	}
	if s.Pages <= 0 {
		return sharh.Errorf(sharh.EINVALID, "book source page count must be positive")
	}
	return nil
}

// PageURLs returns the URLs of pages 1..Pages of book.
func (s BookSource) PageURLs(book int) []string {
	base := strings.TrimRight(s.BaseURL, "/")
	urls := make([]string, s.Pages)
	for i := range urls {
		urls[i] = fmt.Sprintf(s.Pattern, base, book, i+1)
	}
	return urls
}

// HarvestProgress reports page progress within one book.
type HarvestProgress struct {
	Book int
	sharh.FetchProgress
}

// HarvestProgressFunc is a callback for reporting harvest progress.
type HarvestProgressFunc func(HarvestProgress)

// Harvester fetches every book of a source and extracts its sections.
type Harvester struct {
	Pages     sharh.PageFetcher
	Extractor sharh.SectionExtractor
}

// Harvest processes the books in order. Each book is extracted on its own
// and merged into the overall result, so a later book overwrites labels of
// an earlier one.
func (h *Harvester) Harvest(ctx context.Context, src BookSource, progress HarvestProgressFunc) (*sharh.Result, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	total := sharh.NewResult()
	for _, book := range src.Books {
		var bookProgress sharh.FetchProgressFunc
		if progress != nil {
			bookProgress = func(p sharh.FetchProgress) {
				progress(HarvestProgress{Book: book, FetchProgress: p})
			}
		}

		pages, err := h.Pages.FetchPages(ctx, src.PageURLs(book), bookProgress)
		if err != nil {
			return nil, fmt.Errorf("book %d: %w", book, err)
		}

		result, err := h.Extractor.ExtractSections(pages)
		if err != nil {
			return nil, fmt.Errorf("book %d: %w", book, err)
		}
		total.Merge(result)
	}
	return total, nil
}
