package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/flintc/internal/source"
)

type fakeLoader struct {
	edges map[string][]ImportRef
}

func (f fakeLoader) Imports(file source.FileHash) ([]ImportRef, error) {
	refs, ok := f.edges[file.Path()]
	if !ok {
		return nil, errors.New("not found")
	}
	return refs, nil
}

func TestResolve_LinearChain(t *testing.T) {
	a, b, c := source.New("/proj/a.flint"), source.New("/proj/b.flint"), source.New("/proj/c.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{
		a.Path(): {{Kind: ImportPath, Path: b.Path()}},
		b.Path(): {{Kind: ImportPath, Path: c.Path()}},
		c.Path(): nil,
	}}

	g, diags := Resolve(a, loader, false)
	require.Empty(t, diags)

	tips := Tips(g)
	require.Len(t, tips, 1)
	assert.True(t, tips[0].File.Equal(c))
}

func TestResolve_CyclicImportBecomesWeak(t *testing.T) {
	a, b := source.New("/proj/a.flint"), source.New("/proj/b.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{
		a.Path(): {{Kind: ImportPath, Path: b.Path()}},
		b.Path(): {{Kind: ImportPath, Path: a.Path()}},
	}}

	g, diags := Resolve(a, loader, false)
	require.Len(t, diags, 1)
	assert.Equal(t, "cyclic import involving \"/proj/a.flint\" converted to a weak (forward-declared) edge", diags[0].Message())

	bNode := g.Node(b)
	require.NotNil(t, bNode)
	assert.Len(t, bNode.Weak, 1)
	assert.Empty(t, bNode.Strong)
}

func TestResolve_DuplicateImportCollapsed(t *testing.T) {
	a, b := source.New("/proj/a.flint"), source.New("/proj/b.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{
		a.Path(): {{Kind: ImportPath, Path: b.Path()}, {Kind: ImportPath, Path: b.Path()}},
		b.Path(): nil,
	}}

	g, diags := Resolve(a, loader, false)
	require.Empty(t, diags)
	assert.Len(t, g.Node(a).Strong, 1)
}

func TestResolve_UnknownCoreModule(t *testing.T) {
	a := source.New("/proj/a.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{
		a.Path(): {{Kind: ImportCoreModule, Module: "nope"}},
	}}

	_, diags := Resolve(a, loader, false)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message(), "nope")
}

func TestResolve_MissingFileReported(t *testing.T) {
	a := source.New("/proj/a.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{}}

	_, diags := Resolve(a, loader, false)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message(), "could not be resolved")
}

func TestResolve_ResolvedLibraryImportBecomesStrongEdge(t *testing.T) {
	a, lib := source.New("/proj/a.flint"), source.New("/lib/collections/list.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{
		a.Path():   {{Kind: ImportLibrary, Name: "collections.list", Path: lib.Path()}},
		lib.Path(): nil,
	}}

	g, diags := Resolve(a, loader, false)
	require.Empty(t, diags)
	assert.True(t, g.Node(a).Strong[0].Equal(lib))
}

func TestResolve_UnresolvedLibraryImportReportsDiagnostic(t *testing.T) {
	a := source.New("/proj/a.flint")
	loader := fakeLoader{edges: map[string][]ImportRef{
		a.Path(): {{Kind: ImportLibrary, Name: "collections.list"}},
	}}

	g, diags := Resolve(a, loader, false)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message(), "collections.list")
	assert.Empty(t, g.Node(a).Strong)
}
