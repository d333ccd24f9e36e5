package parser

import (
	"path/filepath"
	"strings"

	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/token"
)

// parseImport handles both import forms spec.md §4.3 names: quoted-
// string path imports and dotted-identifier Core/library imports, each
// optionally aliased with `as NAME`.
func (p *Parser) parseImport(ln line) int {
	toks := ln.tokens
	if len(toks) < 2 {
		return 1
	}

	var def ast.ImportDef
	def.Pos = astPos(p.file, ln.pos, 0)
	i := 1

	switch toks[1].Kind {
	case token.STR_VALUE:
		path := unquoteImportPath(toks[1].Text())
		resolved := filepath.Join(filepath.Dir(p.file.Path()), path)
		cwd, _ := filepath.Abs(".")
		rel, err := filepath.Rel(cwd, resolved)
		if err == nil && strings.HasPrefix(rel, "..") {
			p.report(diag.KindImportExitedCWD, ln.pos, func(d *diag.Diagnostic) { d.Name = path })
		}
		def.Path = path
		def.Target = source.New(resolved)
		i = 2
	case token.IDENTIFIER:
		name, ni := parseDottedName(toks, 1)
		def.DottedName = name
		i = ni
		if strings.HasPrefix(name, "Core.") {
			def.IsCoreModule = true
			mod := strings.TrimPrefix(name, "Core.")
			if !isCoreModuleName(mod) {
				p.report(diag.KindCoreModuleNotFound, ln.pos, func(d *diag.Diagnostic) { d.Name = mod })
			}
		}
	default:
		return 1
	}

	if i < len(toks) && toks[i].Kind == token.KW_AS && i+1 < len(toks) && toks[i+1].Kind == token.IDENTIFIER {
		def.Alias = toks[i+1].Text()
	}

	key := def.Path
	if key == "" {
		key = def.DottedName
	}
	if p.importTargets[key] {
		p.report(diag.KindImportSameFileTwice, ln.pos, func(d *diag.Diagnostic) { d.Name = key })
	}
	p.importTargets[key] = true

	p.node.Imports = append(p.node.Imports, &def)
	if def.IsCoreModule {
		p.node.CoreModules = append(p.node.CoreModules, strings.TrimPrefix(def.DottedName, "Core."))
	}
	p.node.add(&def, "")
	return 1
}

func unquoteImportPath(lexemeText string) string {
	s := lexemeText
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}

// parseDottedName reads an IDENTIFIER (DOT IDENTIFIER)* chain starting
// at toks[i], returning the joined name and the index just past it.
func parseDottedName(toks token.List, i int) (string, int) {
	var b strings.Builder
	b.WriteString(toks[i].Text())
	i++
	for i+1 < len(toks) && toks[i].Kind == token.DOT && toks[i+1].Kind == token.IDENTIFIER {
		b.WriteByte('.')
		b.WriteString(toks[i+1].Text())
		i += 2
	}
	return b.String(), i
}
