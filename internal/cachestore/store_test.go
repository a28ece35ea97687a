package cachestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_SetGet(t *testing.T) {
	s := newStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set("catalog", payload{Name: "gpu-a40", Count: 2}, time.Hour))

	var got payload
	require.True(t, s.Get("catalog", &got))
	assert.Equal(t, payload{Name: "gpu-a40", Count: 2}, got)
}

func TestStore_GetMissing(t *testing.T) {
	s := newStore(t)

	var v string
	assert.False(t, s.Get("nope", &v))
}

func TestStore_LazyExpiry(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set("short", "value", -time.Second))

	var v string
	assert.False(t, s.Get("short", &v), "expired entry should read as absent")
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set("template/base", "descriptor", 0))

	var v string
	require.True(t, s.Get("template/base", &v))
	assert.Equal(t, "descriptor", v)
}

func TestStore_CorruptEntryIsAbsent(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o600))

	var v string
	assert.False(t, s.Get("broken", &v))

	// The caller can repopulate after a corrupt read.
	require.NoError(t, s.Set("broken", "fresh", 0))
	require.True(t, s.Get("broken", &v))
	assert.Equal(t, "fresh", v)
}

func TestStore_Delete(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set("gone", 1, 0))
	assert.True(t, s.Delete("gone"))
	assert.False(t, s.Delete("gone"), "second delete finds nothing")

	var v int
	assert.False(t, s.Get("gone", &v))
}

func TestStore_Keys(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Set("template/web", "a", 0))
	require.NoError(t, s.Set("template/db", "b", 0))
	require.NoError(t, s.Set("catalog", "c", time.Hour))

	assert.Equal(t, []string{"template/db", "template/web"}, s.Keys("template/"))
	assert.Len(t, s.Keys(""), 3)
}

func TestDefaultDir_EnvOverride(t *testing.T) {
	t.Setenv(EnvDir, "/tmp/elsewhere")
	assert.Equal(t, "/tmp/elsewhere", DefaultDir())
}
