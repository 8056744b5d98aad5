package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir() + "/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// TestOpen_AppliesPragmas tests the required SQLite configuration.
func TestOpen_AppliesPragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
}

// TestOpen_Idempotent tests reopening an existing database.
func TestOpen_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/test.db"

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(context.Background(), "k", []byte(`"v"`)))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s2.Close() })

	value, ok, err := s2.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"v"`, string(value))
}

// TestOpen_SchemaVersion tests that migrations stamp user_version.
func TestOpen_SchemaVersion(t *testing.T) {
	s := openTestStore(t)

	var version int
	require.NoError(t, s.DB().QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}
