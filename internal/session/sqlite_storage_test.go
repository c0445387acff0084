package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStorageRoundTrip(t *testing.T) {
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get(StorageKeyUser)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(StorageKeyUser, []byte(`{"id":"1"}`)))
	val, ok, err := store.Get(StorageKeyUser)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"id":"1"}`, string(val))

	// Overwrite is an upsert.
	require.NoError(t, store.Set(StorageKeyUser, []byte(`{"id":"2"}`)))
	val, _, err = store.Get(StorageKeyUser)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"2"}`, string(val))

	require.NoError(t, store.Delete(StorageKeyUser))
	_, ok, err = store.Get(StorageKeyUser)
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting a missing key is a no-op.
	require.NoError(t, store.Delete("never-written"))
}

func TestSQLiteStorageSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(StorageKeyToken, []byte("token")))
	require.NoError(t, first.Close())

	second, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer second.Close()

	val, ok, err := second.Get(StorageKeyToken)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("token"), val)
}
