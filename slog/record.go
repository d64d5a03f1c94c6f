package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sharh"
)

// Ensure LoggingRecordService implements sharh.RecordService.
var _ sharh.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging.
type LoggingRecordService struct {
	next   sharh.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next sharh.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// ReplaceRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) ReplaceRecords(ctx context.Context, collectionID string, records []*sharh.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("replace records",
			"collection", collectionID,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReplaceRecords(ctx, collectionID, records)
}

// FindRecords delegates to the wrapped service and logs the operation.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter sharh.RecordFilter) (records []*sharh.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}
