package parser

import (
	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/token"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// parseExternDef parses `extern "<module>" def NAME(params) -> TYPE;`
// (SPEC_FULL.md §4.3, recovered from original_source/'s FIP error
// family): a body-less function header bound to a tagged foreign module
// the project's `.fip` directory must resolve. Unlike every other
// top-level definition, it is fully consumed by its header line; a
// following indented body is not expected.
func (p *Parser) parseExternDef(lines []line, idx int) int {
	ln := lines[idx]
	toks := ln.tokens
	consumed := 1

	i := 1
	if i >= len(toks) || toks[i].Kind != token.STR_VALUE {
		return consumed
	}
	module := unquoteImportPath(toks[i].Text())
	i++

	if i >= len(toks) || toks[i].Kind != token.KW_DEF {
		return consumed
	}
	i++

	if i >= len(toks) || toks[i].Kind != token.IDENTIFIER {
		return consumed
	}
	name := toks[i].Text()
	i++

	params, ni, ok := p.parseParamList(toks, i, ln.pos)
	if !ok {
		return consumed
	}
	i = ni

	var returns []*typesys.Type
	if i < len(toks) && toks[i].Kind == token.ARROW {
		i++
		t, rni, rok := p.parseTypeRef(toks, i)
		if rok {
			returns = []*typesys.Type{t}
			i = rni
		}
	}

	def := &ast.ExternDef{
		Pos: astPos(p.file, ln.pos, 0), Module: module, Name: name,
		Params: params, Returns: returns,
	}

	if p.externNames[name] {
		p.report(diag.KindExternDuplicateFunction, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}
	p.externNames[name] = true

	p.validateExternAgainstFIP(module, name, ln.pos)

	p.node.add(def, name)
	return consumed
}

// validateExternAgainstFIP checks name/module against the project's
// `.fip` directory, reporting at most one of ExternWithoutFIP (no
// directory, or FIP not running), ExternNotFound (no module provides
// it) or FIPAmbiguousModuleTag (more than one does).
func (p *Parser) validateExternAgainstFIP(module, name string, pos token.Position) {
	if p.fip == nil || !p.fip.Present() {
		p.report(diag.KindExternWithoutFIP, pos, func(d *diag.Diagnostic) { d.Name = name })
		return
	}

	tags := p.fip.ModulesProviding(name)
	switch len(tags) {
	case 0:
		p.report(diag.KindExternNotFound, pos, func(d *diag.Diagnostic) { d.Name = name })
	case 1:
		// single provider; nothing to report even if its tag differs
		// from the declared module string (original_source treats the
		// declared module as documentation, the .fip lookup as truth).
	default:
		p.report(diag.KindFIPAmbiguousModuleTag, pos, func(d *diag.Diagnostic) { d.Name = module })
	}
}
