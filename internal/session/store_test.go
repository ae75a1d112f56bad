package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	_, ok := store.Get()
	assert.False(t, ok, "fresh store holds no identifier")

	require.NoError(t, store.Set("abc123"))

	id, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)

	// A new store over the same file sees the persisted identifier.
	reopened := NewFileStore(path)
	id, ok = reopened.Get()
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Set("first"))
	require.NoError(t, store.Set("second"))

	id, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "second", id)
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Set("abc123"))
	require.NoError(t, store.Clear())

	_, ok := store.Get()
	assert.False(t, ok)

	// Clearing an already empty store is not an error.
	require.NoError(t, store.Clear())
}

func TestFileStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Set("abc123"))
	assert.FileExists(t, path)
}

func TestFileStore_CorruptFileReadsAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	store := NewFileStore(path)
	_, ok := store.Get()
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get()
	assert.False(t, ok)

	require.NoError(t, store.Set("u1"))
	id, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "u1", id)

	require.NoError(t, store.Clear())
	_, ok = store.Get()
	assert.False(t, ok)
}
