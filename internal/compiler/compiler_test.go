package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/flintc/internal/corelib"
	"github.com/standardbeagle/flintc/internal/parser"
	"github.com/standardbeagle/flintc/internal/source"
)

type fakeLoader struct {
	files map[string][]byte
}

func (f *fakeLoader) Load(path string) ([]byte, error) {
	src, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return src, nil
}

type recordingBackend struct {
	mu        sync.Mutex
	generated []string
}

func (b *recordingBackend) Generate(file *parser.FileNode) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generated = append(b.generated, file.File.Path())
	return nil
}

func (b *recordingBackend) Link(flags string, out string) error { return nil }

func TestCompile_OrdersLeavesBeforeDependents(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.flint")
	bPath := filepath.Join(dir, "b.flint")

	loader := &fakeLoader{files: map[string][]byte{
		aPath: []byte("use \"b.flint\";\ndef main() :\n\treturn;\n"),
		bPath: []byte("def helper() :\n\treturn;\n"),
	}}

	c := NewContext(loader, nil, nil, false)
	backend := &recordingBackend{}

	result, err := c.Compile(context.Background(), aPath, backend, 2)
	require.NoError(t, err)
	require.Empty(t, result.Diags)

	require.Len(t, backend.generated, 2)
	bIdx, aIdx := -1, -1
	for i, p := range backend.generated {
		switch p {
		case bPath:
			bIdx = i
		case aPath:
			aIdx = i
		}
	}
	require.NotEqual(t, -1, bIdx)
	require.NotEqual(t, -1, aIdx)
	assert.Less(t, bIdx, aIdx, "b.flint (the leaf) must be generated before a.flint (its dependent)")
}

func TestCompile_MissingFileProducesError(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.flint")

	loader := &fakeLoader{files: map[string][]byte{
		aPath: []byte("use \"missing.flint\";\ndef main() :\n\treturn;\n"),
	}}

	c := NewContext(loader, nil, nil, false)
	backend := &recordingBackend{}

	result, err := c.Compile(context.Background(), aPath, backend, 2)
	require.NoError(t, err)
	require.NotEmpty(t, result.Diags)
}

func TestCompile_ResolvesLibraryImport(t *testing.T) {
	dir := t.TempDir()
	libRoot := filepath.Join(dir, "lib")
	require.NoError(t, os.MkdirAll(filepath.Join(libRoot, "collections"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libRoot, "collections", "list.flint"), []byte("def helper() :\n\treturn;\n"), 0o644))

	mainPath := filepath.Join(dir, "main.flint")
	require.NoError(t, os.WriteFile(mainPath, []byte("use collections.list;\ndef main() :\n\treturn;\n"), 0o644))

	libraries := corelib.NewLibraryIndex([]string{libRoot})
	c := NewContext(source.DiskLoader{}, libraries, nil, false)
	backend := &recordingBackend{}

	result, err := c.Compile(context.Background(), mainPath, backend, 2)
	require.NoError(t, err)
	require.Empty(t, result.Diags, "a resolvable library import must not raise a diagnostic")
	assert.Contains(t, backend.generated, filepath.Join(libRoot, "collections", "list.flint"))
}

func TestCompile_UnresolvedLibraryImportReportsDiagnostic(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.flint")
	require.NoError(t, os.WriteFile(mainPath, []byte("use collections.list;\ndef main() :\n\treturn;\n"), 0o644))

	libraries := corelib.NewLibraryIndex([]string{filepath.Join(dir, "lib")})
	c := NewContext(source.DiskLoader{}, libraries, nil, false)
	backend := &recordingBackend{}

	result, err := c.Compile(context.Background(), mainPath, backend, 2)
	require.NoError(t, err)
	require.Len(t, result.Diags, 1)
	assert.Contains(t, result.Diags[0].Message(), "collections.list")
}

func TestResourceLock_SerializesSameName(t *testing.T) {
	defer goleak.VerifyNone(t)

	lock := NewResourceLock()
	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup
	var holders, maxHolders int32

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			release := lock.Acquire("shared")
			defer release()
			h := atomic.AddInt32(&holders, 1)
			mu.Lock()
			if h > maxHolders {
				maxHolders = h
			}
			order = append(order, n)
			mu.Unlock()
			atomic.AddInt32(&holders, -1)
		}(i)
	}
	wg.Wait()
	assert.Len(t, order, 5)
	assert.Equal(t, int32(1), maxHolders, "at most one goroutine may hold the same name at a time")
}
