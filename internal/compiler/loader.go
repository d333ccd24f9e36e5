package compiler

import (
	"strings"

	"github.com/standardbeagle/flintc/internal/cerr"
	"github.com/standardbeagle/flintc/internal/resolver"
	"github.com/standardbeagle/flintc/internal/source"
)

// importLoader adapts Context to resolver.ImportLoader: the resolver
// drives parsing on demand (it does not know about internal/parser, per
// its own package doc), asking only "what does this file import" for
// each file it first encounters.
type importLoader struct {
	c *Context
}

func (l *importLoader) Imports(file source.FileHash) ([]resolver.ImportRef, error) {
	node, err := l.c.parseFile(file)
	if err != nil {
		return nil, cerr.IOErrorf("compiler.Imports", file.Path(), err)
	}

	refs := make([]resolver.ImportRef, 0, len(node.Imports))
	for _, imp := range node.Imports {
		switch {
		case imp.IsCoreModule:
			refs = append(refs, resolver.ImportRef{
				Kind:   resolver.ImportCoreModule,
				Module: strings.TrimPrefix(imp.DottedName, "Core."),
			})
		case imp.Path != "":
			refs = append(refs, resolver.ImportRef{
				Kind: resolver.ImportPath,
				Path: imp.Target.Path(),
			})
		default:
			ref := resolver.ImportRef{Kind: resolver.ImportLibrary, Name: imp.DottedName}
			if l.c.Libraries != nil {
				if resolved, err := l.c.Libraries.Resolve(strings.ReplaceAll(imp.DottedName, ".", "/")); err == nil {
					ref.Path = resolved
				}
			}
			refs = append(refs, ref)
		}
	}
	return refs, nil
}
