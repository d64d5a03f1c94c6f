package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/sharh/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(sqlite.MemoryPath)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("migrates a new database", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		version, err := db.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)

		var n int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM collections").Scan(&n))
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n))
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		require.Error(t, db.Open())
	})

	t.Run("file databases use WAL and foreign keys", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "sharh.db"))
		require.NoError(t, db.Open())
		defer db.Close()
		ctx := context.Background()

		var journalMode string
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode))
		assert.Equal(t, "wal", journalMode)

		var foreignKeys int
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&foreignKeys))
		assert.Equal(t, 1, foreignKeys)
	})

	t.Run("reopening does not rerun migrations", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sharh.db")
		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		version, err := db.SchemaVersion(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})

	t.Run("refuses a schema from a newer program", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sharh.db")
		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(context.Background(), "PRAGMA user_version = 99")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		err = sqlite.NewDB(path).Open()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "newer")
	})
}
