package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sharh"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sharh.RecordService = (*RecordService)(nil)

// RecordService implements sharh.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashBody returns the hex xxhash of a record body.
func hashBody(body string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(body))
}

// ReplaceRecords deletes every record of the collection and inserts records
// in one transaction. IDs, hashes and timestamps are filled in on the
// passed records.
// Returns ENOTFOUND if the collection does not exist.
func (s *RecordService) ReplaceRecords(ctx context.Context, collectionID string, records []*sharh.Record) error {
	for _, r := range records {
		r.CollectionID = collectionID
		if err := r.Validate(); err != nil {
			return err
		}
	}

	now := time.Now().UTC().Truncate(time.Second)
	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "UPDATE collections SET updated_at = ? WHERE id = ?",
			now.Format(time.RFC3339), collectionID)
		if err != nil {
			return err
		}
		if n, err := result.RowsAffected(); err != nil {
			return err
		} else if n == 0 {
			return sharh.Errorf(sharh.ENOTFOUND, "collection not found")
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE collection_id = ?", collectionID); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO records (id, collection_id, label, number, body, body_hash, position, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		seen := make(map[string]bool, len(records))
		for _, r := range records {
			if seen[r.Label] {
				return sharh.Errorf(sharh.ECONFLICT, "duplicate record label %q", r.Label)
			}
			seen[r.Label] = true

			r.ID = uuid.New().String()
			r.BodyHash = hashBody(r.Body)
			r.UpdatedAt = now

			var number sql.NullInt64
			if r.Number != nil {
				number = sql.NullInt64{Int64: int64(*r.Number), Valid: true}
			}

			if _, err := stmt.ExecContext(ctx, r.ID, r.CollectionID, r.Label, number, r.Body,
				r.BodyHash, r.Position, r.UpdatedAt.Format(time.RFC3339)); err != nil {
				return err
			}
		}
		return nil
	})
}

// FindRecords retrieves records matching the filter, ordered by position.
func (s *RecordService) FindRecords(ctx context.Context, filter sharh.RecordFilter) ([]*sharh.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, collection_id, label, number, body, body_hash, position, updated_at
		FROM records WHERE 1=1`)

	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.Label != nil {
		query.WriteString(" AND label = ?")
		args = append(args, *filter.Label)
	}

	query.WriteString(" ORDER BY collection_id, position")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*sharh.Record
	for rows.Next() {
		var r sharh.Record
		var number sql.NullInt64
		var updatedAt string

		if err := rows.Scan(&r.ID, &r.CollectionID, &r.Label, &number, &r.Body,
			&r.BodyHash, &r.Position, &updatedAt); err != nil {
			return nil, err
		}
		if number.Valid {
			n := int(number.Int64)
			r.Number = &n
		}
		if r.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		records = append(records, &r)
	}

	return records, rows.Err()
}
