package sharh

import (
	"context"
	"time"
)

// CollectionKind distinguishes how a collection was produced.
type CollectionKind string

// Collection kinds.
const (
	KindExplanations CollectionKind = "explanations"
	KindCatalog      CollectionKind = "catalog"
)

// Collection is a named set of sections harvested from one source.
type Collection struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	SourceURL string         `json:"sourceUrl"`
	Kind      CollectionKind `json:"kind"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Validate returns an error if the collection contains invalid fields.
func (c *Collection) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "collection name required")
	}
	if c.SourceURL == "" {
		return Errorf(EINVALID, "collection source URL required")
	}
	switch c.Kind {
	case KindExplanations, KindCatalog:
	default:
		return Errorf(EINVALID, "collection kind %q unknown", c.Kind)
	}
	return nil
}

// CollectionService represents a service for managing collections.
type CollectionService interface {
	// CreateCollection creates a new collection.
	// Returns ECONFLICT if a collection with the same name exists.
	CreateCollection(ctx context.Context, c *Collection) error

	// FindCollectionByID retrieves a collection by ID.
	// Returns ENOTFOUND if collection does not exist.
	FindCollectionByID(ctx context.Context, id string) (*Collection, error)

	// FindCollections retrieves collections matching the filter.
	FindCollections(ctx context.Context, filter CollectionFilter) ([]*Collection, error)

	// DeleteCollection permanently removes a collection and all its records.
	// Returns ENOTFOUND if collection does not exist.
	DeleteCollection(ctx context.Context, id string) error
}

// CollectionFilter represents a filter for FindCollections.
type CollectionFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
