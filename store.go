package sharh

import "context"

// DocumentStore persists one JSON document with atomic semantics.
// Save writes to a temporary location; Commit makes the document permanent;
// Abort discards pending changes.
type DocumentStore interface {
	Save(ctx context.Context, v any) error
	Commit() error
	Abort() error
}
