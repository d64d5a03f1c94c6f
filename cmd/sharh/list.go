package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collections, err := deps.Collections.FindCollections(deps.Ctx, sharh.CollectionFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	if len(collections) == 0 {
		fmt.Fprintln(deps.Stdout, "No collections found. Use 'sharh harvest' to create one.")
		return nil
	}

	for _, col := range collections {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", col.ID, col.Name, col.Kind, col.SourceURL)
	}

	return nil
}
