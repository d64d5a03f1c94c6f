package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sharh.Errorf(sharh.EINVALID, "use --force to confirm deletion")
	}

	collection, err := lookupCollection(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Collections.DeleteCollection(deps.Ctx, collection.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted collection %q\n", collection.Name)
	return nil
}
