package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB creates a migrated in-memory database with cleanup.
func setupTestDB(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)

	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNewSQLiteStorage_Validation(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := setupTestDB(t)
	require.NoError(t, store.Migrate(context.Background()))

	version, err := store.schemaVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, ExpectedSchemaVersion, version)
}
