package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/cerr"
	"github.com/standardbeagle/flintc/internal/debug"
	"github.com/standardbeagle/flintc/internal/parser"
)

// irBackend is the driver's own compiler.Backend: actual code generation
// and linking are this front end's Non-goals (SPEC_FULL.md §4.6), so
// Generate just renders each file's definition signatures into a
// textual, human-readable intermediate form, and Link writes the
// concatenated result to --output-ll-file (when given) rather than
// producing a real executable. It exists so the driver exercises the
// Backend interface end to end instead of leaving it uncalled.
type irBackend struct {
	irOutPath string // --output-ll-file; empty means don't write one

	mu    sync.Mutex
	files map[string]string // file path -> rendered IR, keyed for deterministic Link ordering
}

func newIRBackend(irOutPath string) *irBackend {
	return &irBackend{irOutPath: irOutPath, files: make(map[string]string)}
}

func (b *irBackend) Generate(file *parser.FileNode) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "; %s\n", file.File.Path())
	for _, def := range file.Definitions {
		sb.WriteString(renderDefinitionIR(def))
	}

	b.mu.Lock()
	b.files[file.File.Path()] = sb.String()
	b.mu.Unlock()

	debug.Tracef("backend", "generated IR for %s", file.File.Path())
	return nil
}

func (b *irBackend) Link(flags, out string) error {
	b.mu.Lock()
	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var sb strings.Builder
	fmt.Fprintf(&sb, "; flintc intermediate representation\n; linker flags: %q\n; output: %s\n", flags, out)
	for _, p := range paths {
		sb.WriteString(b.files[p])
	}
	b.mu.Unlock()

	if b.irOutPath != "" {
		if err := os.WriteFile(b.irOutPath, []byte(sb.String()), 0o644); err != nil {
			return cerr.IOErrorf("backend.Link", b.irOutPath, err)
		}
	}
	debug.Tracef("backend", "linked %d file(s) into %s", len(paths), out)
	return nil
}

func renderDefinitionIR(def ast.Definition) string {
	switch d := def.(type) {
	case *ast.FunctionDef:
		return fmt.Sprintf("def %s(%d params) -> %d returns\n", d.Name, len(d.Params), len(d.Returns))
	case *ast.ExternDef:
		return fmt.Sprintf("extern %q def %s(%d params)\n", d.Module, d.Name, len(d.Params))
	case *ast.DataDef:
		return fmt.Sprintf("data %s(%d fields)\n", d.Name, len(d.Fields))
	case *ast.FuncDef:
		return fmt.Sprintf("func %s(%d functions)\n", d.Name, len(d.Functions))
	case *ast.EntityDef:
		return fmt.Sprintf("entity %s\n", d.Name)
	case *ast.EnumDef:
		return fmt.Sprintf("enum %s(%d values)\n", d.Name, len(d.Values))
	case *ast.ErrorDef:
		return fmt.Sprintf("error %s(%d tags)\n", d.Name, len(d.Tags))
	case *ast.VariantDef:
		return fmt.Sprintf("variant %s(%d members)\n", d.Name, len(d.Members))
	case *ast.TestDef:
		return fmt.Sprintf("test %q\n", d.Name)
	default:
		return ""
	}
}
