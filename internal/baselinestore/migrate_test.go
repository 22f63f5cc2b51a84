package baselinestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/perfgate/perfgate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateTo_JSONBackend(t *testing.T) {
	err := MigrateTo(schema.JSONBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not supported for the json backend")
}

func TestMigrateTo_SQLite(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version
	err := MigrateTo(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = MigrateTo(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Migrate to a specific version
	err = MigrateTo(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)

	// Rollback fully, then back up
	err = MigrateTo(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)
	err = MigrateTo(schema.SQLiteBackend, dbPath, 2)
	assert.NoError(t, err)
}
