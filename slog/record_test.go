package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/sharh"
	"github.com/fwojciec/sharh/mock"
	sharhslog "github.com/fwojciec/sharh/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs replace with count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordService{
			ReplaceRecordsFn: func(ctx context.Context, collectionID string, records []*sharh.Record) error {
				return nil
			},
		}
		svc := sharhslog.NewLoggingRecordService(inner, debugLogger(&buf))

		err := svc.ReplaceRecords(context.Background(), "c1", []*sharh.Record{{Label: "a"}, {Label: "b"}})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "msg=\"replace records\" collection=c1 count=2")
	})

	t.Run("logs find errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RecordService{
			FindRecordsFn: func(ctx context.Context, filter sharh.RecordFilter) ([]*sharh.Record, error) {
				return nil, errors.New("db closed")
			},
		}
		svc := sharhslog.NewLoggingRecordService(inner, debugLogger(&buf))

		_, err := svc.FindRecords(context.Background(), sharh.RecordFilter{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"db closed\"")
	})
}
