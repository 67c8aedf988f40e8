package mediastorage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Persist(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local, err := NewLocal(dir)
	require.NoError(t, err)

	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	obj, err := local.Persist(context.Background(), payload, "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(obj.ID, ".jpg"))
	assert.Equal(t, filepath.Join(dir, obj.ID), obj.Reference)

	written, err := os.ReadFile(obj.Reference)
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestLocal_PersistUnknownMime(t *testing.T) {
	t.Parallel()

	local, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	obj, err := local.Persist(context.Background(), []byte("data"), "application/x-unknown")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(obj.ID, ".bin"))
}

func TestLocal_UniqueNames(t *testing.T) {
	t.Parallel()

	local, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	first, err := local.Persist(context.Background(), []byte("one"), "image/png")
	require.NoError(t, err)
	second, err := local.Persist(context.Background(), []byte("two"), "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewLocal_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocal(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
