package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/fs"
)

// Run executes the blank command.
func (c *BlankCmd) Run(deps *Dependencies) error {
	var doc map[string]json.RawMessage
	if err := loadDocument(deps, c.File, &doc); err != nil {
		return err
	}

	blanked := sharh.BlankEntries(doc, c.Keys)
	if len(blanked) < len(c.Keys) {
		done := make(map[string]bool, len(blanked))
		for _, k := range blanked {
			done[k] = true
		}
		for _, k := range c.Keys {
			if !done[k] {
				fmt.Fprintf(deps.Stderr, "  not found: %s\n", k)
			}
		}
	}

	if len(blanked) > 0 {
		if err := writeDocument(deps, c.File, fs.SortedByLabel(doc, "")); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Blanked %d entries in %s\n", len(blanked), c.File)
	return nil
}
