package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/crawl"
	"github.com/fwojciec/sharh/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if !c.Force {
		if err := checkAvailable(deps, c.Name); err != nil {
			return err
		}
	}

	progress := func(p sharh.FetchProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(p.URL, 60), p.Error)
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}
	deps.Logger.InfoContext(deps.Ctx, "scrape",
		"items", result.Items,
		"entries", len(result.Entries),
		"skipped", result.Skipped,
		"failed", result.Failed,
	)

	collection := &sharh.Collection{
		Name:      c.Name,
		SourceURL: c.URL,
		Kind:      sharh.KindCatalog,
	}
	if err := prepareCollection(deps, collection, c.Force); err != nil {
		return err
	}

	texts := make(map[string]string, len(result.Entries))
	for title, entry := range result.Entries {
		texts[title] = entry.Text
	}
	records := sharh.RecordsFromSections(collection.ID, texts, "")
	if err := deps.Records.ReplaceRecords(deps.Ctx, collection.ID, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := writeDocument(deps, c.Out, fs.SortedByLabel(result.Entries, "")); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d entries into %q (%d duplicate, %d failed)\n",
		len(result.Entries), c.Name, result.Skipped, result.Failed)
	return nil
}
