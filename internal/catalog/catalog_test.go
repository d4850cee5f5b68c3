package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) *Reader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewReader(path)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r := NewReader(filepath.Join(t.TempDir(), "data.json"))
	entries, err := r.Load()
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
	require.False(t, r.Exists())
}

func TestLoad_ArrayReturnedVerbatim(t *testing.T) {
	r := writeCatalog(t, `[{"id":1,"name":"A"},{"id":2,"name":"B"}]`)
	entries, err := r.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	first, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, float64(1), first["id"])
	require.Equal(t, "A", first["name"])
	require.True(t, r.Exists())
}

func TestLoad_EmptyArray(t *testing.T) {
	r := writeCatalog(t, `[]`)
	entries, err := r.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLoad_ObjectIsNotAList(t *testing.T) {
	r := writeCatalog(t, `{"id":1}`)
	_, err := r.Load()
	require.ErrorIs(t, err, ErrNotList)
}

func TestLoad_NullIsNotAList(t *testing.T) {
	r := writeCatalog(t, `null`)
	_, err := r.Load()
	require.ErrorIs(t, err, ErrNotList)
}

func TestLoad_MalformedJSON(t *testing.T) {
	r := writeCatalog(t, `[{"id":1},`)
	_, err := r.Load()
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoad_RereadsEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	r := NewReader(path)

	entries, err := r.Load()
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o644))
	entries, err = r.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
}
