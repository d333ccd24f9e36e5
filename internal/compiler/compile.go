package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/standardbeagle/flintc/internal/cerr"
	"github.com/standardbeagle/flintc/internal/debug"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/parser"
	"github.com/standardbeagle/flintc/internal/resolver"
	"github.com/standardbeagle/flintc/internal/source"
)

// Backend consumes one fully-parsed FileNode once every file it strongly
// depends on has already been handed to Generate (spec.md §2's pipeline
// stage after resolution; generation/linking internals are this front
// end's Non-goals, so the concrete backend belongs to the driver).
type Backend interface {
	Generate(file *parser.FileNode) error
	Link(flags string, out string) error
}

// Result is the outcome of compiling one entry file through to backend
// hand-off.
type Result struct {
	Root  *parser.FileNode
	Diags []*diag.Diagnostic
}

// DefaultParallelism is the worker pool size Compile uses when the
// caller passes a non-positive value (spec.md §5 item 1: "a fixed-size
// work-stealing worker pool... may run independent parses concurrently
// across files").
const DefaultParallelism = 4

// Compile resolves rootPath's import graph, then repeatedly compiles the
// graph's current tips (files with no unresolved strong dependency, via
// resolver.Tips) concurrently up to parallelism workers, removing each
// tip from the graph once its backend hand-off returns, until the graph
// is empty (spec.md §5 "Ordering guarantees": "backend emission order is
// any topological order of the strong-edge DAG, with ties broken... by
// insertion-into-registry order" — Tips already returns that order).
func (c *Context) Compile(ctx context.Context, rootPath string, backend Backend, parallelism int) (*Result, error) {
	root := source.New(rootPath)
	rootNode, err := c.parseFile(root)
	if err != nil {
		return nil, cerr.IOErrorf("compiler.Compile", rootPath, err)
	}

	graph, diags := resolver.Resolve(root, &importLoader{c: c}, c.Debug)
	c.mu.Lock()
	c.diags = append(c.diags, diags...)
	c.mu.Unlock()

	if parallelism < 1 {
		parallelism = DefaultParallelism
	}
	sem := semaphore.NewWeighted(int64(parallelism))

	for {
		tips := resolver.Tips(graph)
		if len(tips) == 0 {
			break
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, tip := range tips {
			tip := tip
			if err := sem.Acquire(gctx, 1); err != nil {
				return nil, err
			}
			g.Go(func() error {
				defer sem.Release(1)
				// A file that failed to load already has a
				// ResolverFileNotFound diagnostic recorded by the resolver
				// pass; per spec.md §5 "Cancellation" a diagnostic alone
				// never aborts compilation, so this tip is just skipped
				// rather than failing the whole round.
				node, err := c.parseFile(tip.File)
				if err != nil {
					debug.Tracef("compiler", "skipping %s: %v", tip.File.Path(), err)
					return nil
				}
				debug.Tracef("compiler", "emitting %s", tip.File.Path())
				return backend.Generate(node)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, tip := range tips {
			resolver.RemoveNode(graph, tip.File)
		}
	}

	return &Result{Root: rootNode, Diags: c.Diags()}, nil
}
