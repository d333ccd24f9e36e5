// Package resolver builds the import dependency graph: given a root
// file and its parsed imports, compute the transitive closure as a DAG,
// convert any edge that would close a cycle into a weak (forward-
// declared) edge, and expose process-wide registries so the backend can
// iterate files leaves-first (spec.md §4.4 in full).
package resolver

import "github.com/standardbeagle/flintc/internal/source"

// DependencyNode is one file's position in the import graph: its strong
// (must-compile-before-me) and weak (forward-declare-only) out-edges.
type DependencyNode struct {
	File   source.FileHash
	Strong []source.FileHash
	Weak   []source.FileHash
}

func newDependencyNode(file source.FileHash) *DependencyNode {
	return &DependencyNode{File: file}
}

func (n *DependencyNode) addStrong(target source.FileHash) {
	for _, f := range n.Strong {
		if f.Equal(target) {
			return
		}
	}
	n.Strong = append(n.Strong, target)
}

func (n *DependencyNode) addWeak(target source.FileHash) {
	for _, f := range n.Weak {
		if f.Equal(target) {
			return
		}
	}
	n.Weak = append(n.Weak, target)
}

// Graph is the append-only, process-wide registry set spec.md §4.4
// mandates: FileHash-keyed maps of dependency nodes (each carrying its
// file's edge lists) and on-disk paths, plus a reverse function-name
// index. Parsed FileNode bodies are held by the caller, not here.
type Graph struct {
	nodes     map[string]*DependencyNode
	paths     map[string]string
	funcFiles map[string][]source.FileHash // function name -> declaring files
}

// NewGraph creates an empty registry set.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*DependencyNode),
		paths:     make(map[string]string),
		funcFiles: make(map[string][]source.FileHash),
	}
}

func (g *Graph) nodeFor(file source.FileHash) *DependencyNode {
	n, ok := g.nodes[file.Path()]
	if !ok {
		n = newDependencyNode(file)
		g.nodes[file.Path()] = n
	}
	return n
}

// Node returns the registered node for file, or nil if file has not
// been visited.
func (g *Graph) Node(file source.FileHash) *DependencyNode {
	return g.nodes[file.Path()]
}

// RegisterPath records the on-disk path backing a FileHash — the
// registries are append-only for the process lifetime (spec.md §4.4
// "Registries... cleared only at process end").
func (g *Graph) RegisterPath(file source.FileHash, path string) {
	if _, exists := g.paths[file.Path()]; !exists {
		g.paths[file.Path()] = path
	}
}

// Path returns the on-disk path registered for file.
func (g *Graph) Path(file source.FileHash) (string, bool) {
	p, ok := g.paths[file.Path()]
	return p, ok
}

// RegisterFunction adds file to the reverse index of files declaring a
// function named name. Nothing in this module calls it; the parser's
// "did you mean" suggestions draw only on the current file's names.
func (g *Graph) RegisterFunction(name string, file source.FileHash) {
	for _, f := range g.funcFiles[name] {
		if f.Equal(file) {
			return
		}
	}
	g.funcFiles[name] = append(g.funcFiles[name], file)
}

// FunctionDeclaredIn returns every file that declares a function named
// name.
func (g *Graph) FunctionDeclaredIn(name string) []source.FileHash {
	return g.funcFiles[name]
}

// AllFunctionNames returns every function name registered anywhere in
// the graph via RegisterFunction.
func (g *Graph) AllFunctionNames() []string {
	out := make([]string, 0, len(g.funcFiles))
	for name := range g.funcFiles {
		out = append(out, name)
	}
	return out
}
