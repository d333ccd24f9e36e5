// Package compiler ties the lexer, parser, resolver, and a pluggable
// backend together into one compilation (spec.md §2 "System overview"):
// a Context holds every shared, concurrently-accessed registry — the
// process-wide type intern table, the parsed-file cache, and the
// library search index — while Compile drives a leaves-first pass over
// the dependency graph, handing each file to the backend once its own
// dependencies have already been handed off (spec.md §5 "Ordering
// guarantees").
package compiler

import (
	"sync"

	"github.com/standardbeagle/flintc/internal/corelib"
	"github.com/standardbeagle/flintc/internal/debug"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/fip"
	"github.com/standardbeagle/flintc/internal/parser"
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// Context is the shared state every concurrently-parsing file sees
// (spec.md §5: "shared registries... protected by a single coarse lock
// taken around append-only insertion"). One Context serves exactly one
// compilation; it is not reused across driver invocations (spec.md §6
// "Persisted state: none").
type Context struct {
	Loader    source.Loader
	Libraries *corelib.LibraryIndex
	Types     *typesys.Table
	FIP       *fip.Index
	Debug     bool

	locks *ResourceLock

	mu    sync.Mutex
	cache map[string]*parser.FileNode
	diags []*diag.Diagnostic
}

// NewContext builds a fresh compilation context around loader (disk I/O
// abstraction, spec.md §1) and libraries (the library-import search
// index, spec.md §4.4). Pass nil for libraries if no library roots are
// configured; library imports will then never resolve. Pass nil for
// fipIndex if the project carries no `.fip` directory; every `extern`
// declaration will then raise ExternWithoutFIP.
func NewContext(loader source.Loader, libraries *corelib.LibraryIndex, fipIndex *fip.Index, debugEnabled bool) *Context {
	if fipIndex == nil {
		fipIndex = fip.Empty
	}
	return &Context{
		Loader:    loader,
		Libraries: libraries,
		Types:     typesys.NewTable(),
		FIP:       fipIndex,
		Debug:     debugEnabled,
		locks:     NewResourceLock(),
		cache:     make(map[string]*parser.FileNode),
	}
}

// Diags returns every diagnostic accumulated so far, across every parsed
// file and the resolver pass. Safe to call mid-compilation.
func (c *Context) Diags() []*diag.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*diag.Diagnostic(nil), c.diags...)
}

// Node returns file's parsed FileNode if it has already been parsed, or
// nil if not.
func (c *Context) Node(file source.FileHash) (*parser.FileNode, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, ok := c.cache[file.Path()]
	return n, ok
}

// parseFile returns file's FileNode, parsing it at most once even under
// concurrent callers (spec.md §5 item 2: "no two threads parse the same
// imported file concurrently"). A FileNode is only ever inserted into the
// cache once its parse is complete, so a concurrent lookup never observes
// a half-constructed node (spec.md §5 item 1).
func (c *Context) parseFile(file source.FileHash) (*parser.FileNode, error) {
	key := file.Path()

	if node, ok := c.Node(file); ok {
		return node, nil
	}

	release := c.locks.Acquire(key)
	defer release()

	if node, ok := c.Node(file); ok {
		return node, nil
	}

	src, err := c.Loader.Load(key)
	if err != nil {
		return nil, err
	}

	debug.Tracef("compiler", "parsing %s", key)
	node, diags := parser.ParseFile(src, file, c.Types, c.Debug, c.FIP)

	c.mu.Lock()
	c.cache[key] = node
	c.diags = append(c.diags, diags...)
	c.mu.Unlock()

	return node, nil
}
