package main

import (
	"fmt"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/fs"
)

// lookupCollection finds a collection by name, reporting failures on stderr.
func lookupCollection(deps *Dependencies, name string) (*sharh.Collection, error) {
	collections, err := deps.Collections.FindCollections(deps.Ctx, sharh.CollectionFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return nil, err
	}
	if len(collections) == 0 {
		fmt.Fprintf(deps.Stderr, "error: collection %q not found. Use 'sharh list' to see available collections.\n", name)
		return nil, sharh.Errorf(sharh.ENOTFOUND, "collection %q not found", name)
	}
	return collections[0], nil
}

// prepareCollection returns the collection records should be written to.
// An existing collection is reused only when force is set; a new one is
// created otherwise.
func prepareCollection(deps *Dependencies, c *sharh.Collection, force bool) error {
	existing, err := deps.Collections.FindCollections(deps.Ctx, sharh.CollectionFilter{Name: &c.Name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 {
		if !force {
			return alreadyExists(deps, c.Name)
		}
		if existing[0].Kind != c.Kind {
			fmt.Fprintf(deps.Stderr, "error: collection %q holds %s, not %s\n", c.Name, existing[0].Kind, c.Kind)
			return sharh.Errorf(sharh.ECONFLICT, "collection %q holds %s", c.Name, existing[0].Kind)
		}
		*c = *existing[0]
		return nil
	}

	if err := deps.Collections.CreateCollection(deps.Ctx, c); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}
	return nil
}

// checkAvailable returns ECONFLICT if a collection named name exists.
func checkAvailable(deps *Dependencies, name string) error {
	existing, err := deps.Collections.FindCollections(deps.Ctx, sharh.CollectionFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}
	if len(existing) > 0 {
		return alreadyExists(deps, name)
	}
	return nil
}

func alreadyExists(deps *Dependencies, name string) error {
	fmt.Fprintf(deps.Stderr, "error: collection %q already exists. Use --force to replace its records.\n", name)
	return sharh.Errorf(sharh.ECONFLICT, "collection %q already exists", name)
}

// writeDocument saves v to path through an atomic store.
func writeDocument(deps *Dependencies, path string, v any) error {
	var store sharh.DocumentStore
	if deps.NewStore != nil {
		store = deps.NewStore(path)
	} else {
		store = fs.NewJSONStore(path)
	}
	if err := store.Save(deps.Ctx, v); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: write %s: %v\n", path, err)
		return err
	}
	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: write %s: %v\n", path, err)
		return err
	}
	return nil
}

// loadDocument reads the JSON document at path into v.
func loadDocument(deps *Dependencies, path string, v any) error {
	if err := fs.Load(path, v); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sharh.ErrorMessage(err))
		return err
	}
	return nil
}
