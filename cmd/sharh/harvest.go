package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/crawl"
	"github.com/fwojciec/sharh/fs"
	sharhslog "github.com/fwojciec/sharh/slog"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	src := c.source()
	if err := src.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}
	format := c.Format.format()
	if err := format.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	// Fail before fetching when the collection is taken.
	if !c.Force {
		if err := checkAvailable(deps, c.Name); err != nil {
			return err
		}
	}

	progress := func(p crawl.HarvestProgress) {
		if p.Error != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(p.URL, 60), p.Error)
		}
		if p.Completed == p.Total {
			fmt.Fprintf(deps.Stdout, "  Book %d: %d pages\n", p.Book, p.Total)
		}
	}

	result, err := deps.Harvester.Harvest(deps.Ctx, src, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error harvesting: %v\n", err)
		return err
	}
	sharhslog.LogResult(deps.Ctx, deps.Logger, "harvest", result)

	collection := &sharh.Collection{
		Name:      c.Name,
		SourceURL: src.BaseURL,
		Kind:      sharh.KindExplanations,
	}
	if err := prepareCollection(deps, collection, c.Force); err != nil {
		return err
	}

	records := sharh.RecordsFromSections(collection.ID, result.Sections, format.LabelPrefix)
	if err := deps.Records.ReplaceRecords(deps.Ctx, collection.ID, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		if err := writeDocument(deps, c.Out, fs.SortedByLabel(result.Sections, format.LabelPrefix)); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Harvested %d sections into %q (%d omitted, %d overwritten)\n",
		len(result.Sections), c.Name, result.Stats.Omitted(), result.Stats.Overwritten)
	return nil
}
