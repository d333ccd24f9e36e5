package parser

import (
	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/source"
)

// FileNode is one parsed file: its definitions, its import edges (by
// kind), and a name index for call/reference resolution (spec.md §3
// "FileNode").
type FileNode struct {
	File        source.FileHash
	Definitions []ast.Definition
	Imports     []*ast.ImportDef
	CoreModules []string
	ByName      map[string]ast.Definition
	Lines       source.LineTable
}

func newFileNode(file source.FileHash, lines source.LineTable) *FileNode {
	return &FileNode{File: file, ByName: make(map[string]ast.Definition), Lines: lines}
}

func (f *FileNode) add(def ast.Definition, name string) {
	f.Definitions = append(f.Definitions, def)
	if name != "" {
		f.ByName[name] = def
	}
}
