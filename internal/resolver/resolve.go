package resolver

import (
	"github.com/standardbeagle/flintc/internal/corelib"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/source"
)

// ImportKind discriminates what an import target resolves against
// (spec.md §4.4 "If the target is a path dependency"/"library
// reference").
type ImportKind uint8

const (
	ImportPath ImportKind = iota
	ImportCoreModule
	ImportLibrary
)

// ImportRef is one import statement's resolved target, as handed to the
// resolver by the parser's import-parsing step.
type ImportRef struct {
	Kind   ImportKind
	Path   string // resolved on-disk path, for ImportPath
	Module string // Core.* module name, for ImportCoreModule
	Name   string // library name, for ImportLibrary
}

// ImportLoader is the resolver's only collaborator: given a file it has
// not yet visited, return its list of import targets.
// Decouples this package from internal/parser (the resolver drives
// parsing, it does not depend on its types).
type ImportLoader interface {
	Imports(file source.FileHash) ([]ImportRef, error)
}

// Resolve walks the import graph rooted at root, recursive-descent,
// converting any edge that would close a cycle into a weak edge instead
// of recursing into it (spec.md §4.4 "Algorithm"). Duplicate imports of
// the same file from the same importer are silently collapsed (the
// DependencyNode edge-add helpers already dedupe).
func Resolve(root source.FileHash, loader ImportLoader, debugEnabled bool) (*Graph, []*diag.Diagnostic) {
	g := NewGraph()
	r := &resolution{graph: g, loader: loader, debug: debugEnabled, onStack: make(map[string]bool), visited: make(map[string]bool)}
	r.visit(root)
	return g, r.diags
}

type resolution struct {
	graph   *Graph
	loader  ImportLoader
	debug   bool
	onStack map[string]bool
	visited map[string]bool
	diags   []*diag.Diagnostic
}

func (r *resolution) visit(file source.FileHash) {
	key := file.Path()
	if r.visited[key] {
		return
	}
	r.visited[key] = true
	r.onStack[key] = true
	defer delete(r.onStack, key)

	node := r.graph.nodeFor(file)

	refs, err := r.loader.Imports(file)
	if err != nil {
		r.diags = append(r.diags, diag.Emit(diag.Diagnostic{
			Kind: diag.KindResolverFileNotFound, Stage: diag.StageResolving,
			File: file, Name: file.Path(),
		}, r.debug))
		return
	}

	for _, ref := range refs {
		switch ref.Kind {
		case ImportCoreModule:
			if !corelib.IsCoreModule(ref.Module) {
				r.diags = append(r.diags, diag.Emit(diag.Diagnostic{
					Kind: diag.KindCoreModuleNotFound, Stage: diag.StageResolving,
					File: file, Name: ref.Module,
				}, r.debug))
			}
			// Core modules are not files; they never become graph edges.
			continue
		case ImportLibrary:
			if ref.Path == "" {
				// The loader already tried LibraryIndex.Resolve and came up
				// empty (or no library roots are configured); there is no
				// file to add as a graph edge.
				r.diags = append(r.diags, diag.Emit(diag.Diagnostic{
					Kind: diag.KindResolverLibraryNotFound, Stage: diag.StageResolving,
					File: file, Name: ref.Name,
				}, r.debug))
				continue
			}
		}

		target := source.New(ref.Path)
		r.graph.RegisterPath(target, ref.Path)

		if r.onStack[target.Path()] {
			node.addWeak(target)
			r.diags = append(r.diags, diag.Emit(diag.Diagnostic{
				Kind: diag.KindResolverCyclicImport, Stage: diag.StageResolving,
				File: file, Name: target.Path(),
			}, r.debug))
			continue
		}

		node.addStrong(target)
		r.visit(target)
	}
}

// Tips returns every node with no outgoing strong edges — the set the
// driver compiles first, repeatedly, until the root is consumed
// (spec.md §4.4 "Post-order guarantee").
func Tips(g *Graph) []*DependencyNode {
	var tips []*DependencyNode
	for _, n := range g.nodes {
		if len(n.Strong) == 0 {
			tips = append(tips, n)
		}
	}
	return tips
}

// RemoveNode deletes file from the graph and drops it from every other
// node's strong/weak edge list — the driver's per-round "compile tips,
// then remove them" step.
func RemoveNode(g *Graph, file source.FileHash) {
	delete(g.nodes, file.Path())
	for _, n := range g.nodes {
		n.Strong = removeHash(n.Strong, file)
		n.Weak = removeHash(n.Weak, file)
	}
}

func removeHash(list []source.FileHash, target source.FileHash) []source.FileHash {
	out := list[:0]
	for _, f := range list {
		if !f.Equal(target) {
			out = append(out, f)
		}
	}
	return out
}
