package mock

import (
	"context"

	"github.com/fwojciec/sharh"
)

var _ sharh.CollectionService = (*CollectionService)(nil)

// CollectionService is a mock implementation of sharh.CollectionService.
type CollectionService struct {
	CreateCollectionFn   func(ctx context.Context, c *sharh.Collection) error
	FindCollectionByIDFn func(ctx context.Context, id string) (*sharh.Collection, error)
	FindCollectionsFn    func(ctx context.Context, filter sharh.CollectionFilter) ([]*sharh.Collection, error)
	DeleteCollectionFn   func(ctx context.Context, id string) error
}

func (s *CollectionService) CreateCollection(ctx context.Context, c *sharh.Collection) error {
	return s.CreateCollectionFn(ctx, c)
}

func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*sharh.Collection, error) {
	return s.FindCollectionByIDFn(ctx, id)
}

func (s *CollectionService) FindCollections(ctx context.Context, filter sharh.CollectionFilter) ([]*sharh.Collection, error) {
	return s.FindCollectionsFn(ctx, filter)
}

func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollectionFn(ctx, id)
}

var _ sharh.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of sharh.RecordService.
type RecordService struct {
	ReplaceRecordsFn func(ctx context.Context, collectionID string, records []*sharh.Record) error
	FindRecordsFn    func(ctx context.Context, filter sharh.RecordFilter) ([]*sharh.Record, error)
}

func (s *RecordService) ReplaceRecords(ctx context.Context, collectionID string, records []*sharh.Record) error {
	return s.ReplaceRecordsFn(ctx, collectionID, records)
}

func (s *RecordService) FindRecords(ctx context.Context, filter sharh.RecordFilter) ([]*sharh.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}
