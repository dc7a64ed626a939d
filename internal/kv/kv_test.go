package kv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	_, ok, err := m.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("k", []byte(`{"a":1}`)))
	v, ok, err := m.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), v)

	// The returned slice is a copy; mutating it must not touch the store.
	v[0] = 'X'
	v2, _, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), v2)

	require.NoError(t, m.Remove("k"))
	_, ok, err = m.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is fine.
	require.NoError(t, m.Remove("k"))
}

func TestDatabaseStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos_test.db")

	db, err := OpenDatabase(path)
	require.NoError(t, err)

	require.NoError(t, db.Set("k", []byte("v1")))
	require.NoError(t, db.Set("k", []byte("v2"))) // overwrite

	v, ok, err := db.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), v)

	// Values survive a reopen of the same file.
	db2, err := OpenDatabase(path)
	require.NoError(t, err)
	v, ok, err = db2.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, db2.Remove("k"))
	_, ok, err = db2.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
