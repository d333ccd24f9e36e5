package corelib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLibraryFile(t *testing.T, root, relPath string) {
	t.Helper()
	full := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("// test fixture\n"), 0o644))
}

func TestLibraryIndex_ResolveFindsSlashPathFromDottedName(t *testing.T) {
	root := t.TempDir()
	writeLibraryFile(t, root, filepath.Join("collections", "list.flint"))

	idx := NewLibraryIndex([]string{root})
	got, err := idx.Resolve("collections/list")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "collections", "list.flint"), got)
}

func TestLibraryIndex_ResolveTriesRootsInOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeLibraryFile(t, second, "math.flint")

	idx := NewLibraryIndex([]string{first, second})
	got, err := idx.Resolve("math")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "math.flint"), got)
}

func TestLibraryIndex_ResolveMissingReturnsError(t *testing.T) {
	idx := NewLibraryIndex([]string{t.TempDir()})
	_, err := idx.Resolve("nope")
	assert.ErrorIs(t, err, errLibraryNotFound)
}

func TestLibraryIndex_ResolveCachesScanPerRoot(t *testing.T) {
	root := t.TempDir()
	writeLibraryFile(t, root, "io.flint")

	idx := NewLibraryIndex([]string{root})
	_, err := idx.Resolve("io")
	require.NoError(t, err)

	os.RemoveAll(root)

	got, err := idx.Resolve("io")
	require.NoError(t, err, "a second Resolve for an already-scanned root must hit the memoized cache")
	assert.Equal(t, filepath.Join(root, "io.flint"), got)
}
