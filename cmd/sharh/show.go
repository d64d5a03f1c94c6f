package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/crawl"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	collection, err := lookupCollection(deps, c.Name)
	if err != nil {
		return err
	}

	filter := sharh.RecordFilter{CollectionID: &collection.ID}
	if c.Label != "" {
		filter.Label = &c.Label
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	if c.Label != "" {
		if len(records) == 0 {
			fmt.Fprintf(deps.Stderr, "error: record %q not found in %q\n", c.Label, c.Name)
			return sharh.Errorf(sharh.ENOTFOUND, "record %q not found", c.Label)
		}
		fmt.Fprintln(deps.Stdout, records[0].Body)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Records for %s (%d total):\n\n", c.Name, len(records))
	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "  %s  %s\n", r.Label, crawl.FormatBytes(len(r.Body)))
	}

	return nil
}
