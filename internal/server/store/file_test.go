package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, b.Write(ctx, "users", []byte(`{"users":[]}`)))

	got, err := b.Read(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, `{"users":[]}`, string(got))
}

func TestFileBackend_MissingDocument(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	require.NoError(t, err)

	_, err = b.Read(context.Background(), "nothing")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileBackend_OverwriteReplacesDocument(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, b.Write(ctx, "records", []byte("v1")))
	require.NoError(t, b.Write(ctx, "records", []byte("v2")))

	got, err := b.Read(ctx, "records")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	// no leftover temp files
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "records.json", filepath.Base(entries[0].Name()))
}

func TestFileBackend_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileBackend(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
