package parser

import (
	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// analyzePointerUsage rejects typesys.KFuncPointer-typed values outside
// extern signatures (SPEC_FULL.md §4.3, recovered from original_source/'s
// raw-pointer restriction, remapped onto the closed Type taxonomy's only
// pointer-like kind). Scoped deliberately to function headers and variant
// members rather than a full expression-tree walk: those are the two
// places a Type appears declaratively in the surface grammar today
// (locals and expressions never carry an explicit type annotation of
// their own — they take it from the declaration they initialize).
func (p *Parser) analyzePointerUsage() {
	for _, def := range p.node.Definitions {
		switch d := def.(type) {
		case *ast.FunctionDef:
			p.checkNonExternSignature(d.Pos, d.Params, d.Returns)
		case *ast.FuncDef:
			for _, fn := range d.Functions {
				p.checkNonExternSignature(fn.Pos, fn.Params, fn.Returns)
			}
		case *ast.VariantDef:
			for _, m := range d.Members {
				if containsFuncPointer(m.Type) {
					p.reportPos(diag.KindPointerTypeNotAllowedInVariant, d.Pos, nil)
				}
			}
		}
	}
}

func (p *Parser) checkNonExternSignature(pos ast.Pos, params []ast.Param, returns []*typesys.Type) {
	for _, pr := range params {
		if containsFuncPointer(pr.Type) {
			p.reportPos(diag.KindPointerTypeNotAllowedInNonExternContext, pos, nil)
			return
		}
	}
	for _, r := range returns {
		if containsFuncPointer(r) {
			p.reportPos(diag.KindPointerTypeNotAllowedInNonExternContext, pos, nil)
			return
		}
	}
}

func containsFuncPointer(t *typesys.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case typesys.KFuncPointer:
		return true
	case typesys.KArray, typesys.KOptional:
		return containsFuncPointer(t.Elem())
	case typesys.KTuple:
		for _, m := range t.Members() {
			if containsFuncPointer(m) {
				return true
			}
		}
	}
	return false
}

// reportPos is report's ast.Pos-keyed counterpart: analyzePointerUsage
// runs after the main token-position-driven parse pass, over already
// built AST nodes that only carry ast.Pos.
func (p *Parser) reportPos(kind diag.Kind, pos ast.Pos, fill func(*diag.Diagnostic)) {
	d := diag.Diagnostic{Kind: kind, Stage: diag.StageParsing, File: p.file, Line: pos.Line, Column: pos.Column}
	if fill != nil {
		fill(&d)
	}
	p.diags = append(p.diags, diag.Emit(d, p.debug))
}
