package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "assistant.db")

	db, err := InitDB(path)
	require.NoError(t, err)

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'preferences'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "preferences", name)
	require.NoError(t, db.Close())

	// Re-opening an up-to-date database is not an error.
	db, err = InitDB(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
