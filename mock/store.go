package mock

import (
	"context"

	"github.com/fwojciec/sharh"
)

var _ sharh.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of sharh.DocumentStore.
type DocumentStore struct {
	SaveFn   func(ctx context.Context, v any) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocumentStore) Save(ctx context.Context, v any) error {
	return s.SaveFn(ctx, v)
}

func (s *DocumentStore) Commit() error {
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	return s.AbortFn()
}
