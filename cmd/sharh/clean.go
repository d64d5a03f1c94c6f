package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/fs"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	var doc any
	if err := loadDocument(deps, c.In, &doc); err != nil {
		return err
	}

	cleaned := sharh.CleanJSON(doc)
	if m, ok := cleaned.(map[string]any); ok {
		cleaned = fs.SortedByLabel(m, c.Prefix)
	}

	out := c.Out
	if out == "" {
		out = c.In
	}
	if err := writeDocument(deps, out, cleaned); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cleaned %s\n", out)
	return nil
}
