package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/fs"
)

// Run executes the renumber command. Exactly one of --delete or
// --shift-from with --by must be given.
func (c *RenumberCmd) Run(deps *Dependencies) error {
	shift := c.ShiftFrom != 0 || c.By != 0
	switch {
	case shift && c.Delete != 0:
		return c.usage(deps, "use either --delete or --shift-from with --by")
	case shift && (c.ShiftFrom == 0 || c.By == 0):
		return c.usage(deps, "--shift-from and --by must be used together")
	case !shift && c.Delete == 0:
		return c.usage(deps, "nothing to do; use --delete or --shift-from with --by")
	}

	var doc map[string]json.RawMessage
	if err := loadDocument(deps, c.File, &doc); err != nil {
		return err
	}

	var (
		out     map[string]json.RawMessage
		changed int
		err     error
	)
	if shift {
		out, changed, err = sharh.ShiftLabels(doc, c.Prefix, c.ShiftFrom, c.By)
	} else {
		out, changed, err = sharh.DeleteLabel(doc, c.Prefix, c.Delete)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	if err := writeDocument(deps, c.File, fs.SortedByLabel(out, c.Prefix)); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Renumbered %d labels in %s\n", changed, c.File)
	return nil
}

func (c *RenumberCmd) usage(deps *Dependencies, msg string) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
	return sharh.Errorf(sharh.EINVALID, "%s", msg)
}
