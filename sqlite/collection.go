package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/sharh"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sharh.CollectionService = (*CollectionService)(nil)

// CollectionService implements sharh.CollectionService using SQLite.
type CollectionService struct {
	db *DB
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(db *DB) *CollectionService {
	return &CollectionService{db: db}
}

// CreateCollection creates a new collection with a generated ID.
func (s *CollectionService) CreateCollection(ctx context.Context, c *sharh.Collection) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections WHERE name = ?", c.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return sharh.Errorf(sharh.ECONFLICT, "collection %q already exists", c.Name)
	}

	c.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, source_url, kind, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.SourceURL, string(c.Kind),
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindCollectionByID retrieves a collection by ID.
func (s *CollectionService) FindCollectionByID(ctx context.Context, id string) (*sharh.Collection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_url, kind, created_at, updated_at
		FROM collections
		WHERE id = ?
	`, id)

	c, err := scanCollection(row)
	if err == sql.ErrNoRows {
		return nil, sharh.Errorf(sharh.ENOTFOUND, "collection not found")
	}
	return c, err
}

// FindCollections retrieves collections matching the filter, ordered by name.
func (s *CollectionService) FindCollections(ctx context.Context, filter sharh.CollectionFilter) ([]*sharh.Collection, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, kind, created_at, updated_at FROM collections WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []*sharh.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}

	return collections, rows.Err()
}

// DeleteCollection removes a collection; its records are removed by the
// foreign key cascade.
func (s *CollectionService) DeleteCollection(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sharh.Errorf(sharh.ENOTFOUND, "collection not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCollection(row scanner) (*sharh.Collection, error) {
	var c sharh.Collection
	var kind, createdAt, updatedAt string

	if err := row.Scan(&c.ID, &c.Name, &c.SourceURL, &kind, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.Kind = sharh.CollectionKind(kind)

	var err error
	if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &c, nil
}
