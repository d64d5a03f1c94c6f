package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/fs"
)

// Run executes the export command. Records are written in their stored
// order; catalog records become {text, notes} entries.
func (c *ExportCmd) Run(deps *Dependencies) error {
	collection, err := lookupCollection(deps, c.Name)
	if err != nil {
		return err
	}

	records, err := deps.Records.FindRecords(deps.Ctx, sharh.RecordFilter{CollectionID: &collection.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Label)
	}

	var doc any
	switch collection.Kind {
	case sharh.KindCatalog:
		values := make(map[string]sharh.CatalogEntry, len(records))
		for _, r := range records {
			values[r.Label] = sharh.CatalogEntry{Text: r.Body, Notes: []string{}}
		}
		doc = fs.Ordered[sharh.CatalogEntry]{Keys: keys, Values: values}
	default:
		values := make(map[string]string, len(records))
		for _, r := range records {
			values[r.Label] = r.Body
		}
		doc = fs.Ordered[string]{Keys: keys, Values: values}
	}

	if err := writeDocument(deps, c.File, doc); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(records), c.File)
	return nil
}
