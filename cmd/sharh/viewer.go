package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/sharh"
	sharhhtml "github.com/fwojciec/sharh/html"
)

// Run executes the viewer command.
func (c *ViewerCmd) Run(deps *Dependencies) error {
	var doc map[string]json.RawMessage
	if err := loadDocument(deps, c.In, &doc); err != nil {
		return err
	}

	entries, err := sharhhtml.EntriesFromJSON(doc, c.Prefix)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	opts := sharhhtml.DefaultOptions()
	if c.Title != "" {
		opts.Title = c.Title
	}

	var buf bytes.Buffer
	if err := sharhhtml.NewViewer(opts).Render(&buf, entries); err != nil {
		fmt.Fprintf(deps.Stderr, "error: render: %v\n", err)
		return err
	}
	if err := os.WriteFile(c.Out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(deps.Stderr, "error: write %s: %v\n", c.Out, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d sections to %s\n", len(entries), c.Out)
	return nil
}
