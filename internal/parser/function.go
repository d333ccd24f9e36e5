package parser

import (
	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/corelib"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/token"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// parseFunctionDef parses a top-level `def` function (spec.md §4.3
// "Functions"), including its `main` special-casing (spec.md §4.3's
// FnMain* diagnostic family).
func (p *Parser) parseFunctionDef(lines []line, idx int) int {
	ln := lines[idx]
	toks := ln.tokens
	body := extractBody(lines, idx)
	consumed := 1 + len(body)

	i := 0
	var aligned, isConst bool
	for i < len(toks) {
		switch toks[i].Kind {
		case token.KW_ALIGNED:
			aligned = true
			i++
			continue
		case token.KW_CONST:
			isConst = true
			i++
			continue
		}
		break
	}

	if i >= len(toks) || toks[i].Kind != token.KW_DEF {
		p.report(diag.KindFnMainWrongSignature, ln.pos, nil)
		return consumed
	}
	i++

	if i >= len(toks) || toks[i].Kind != token.IDENTIFIER {
		p.report(diag.KindFnMainWrongSignature, ln.pos, nil)
		return consumed
	}
	name := toks[i].Text()
	i++

	if corelib.IsReservedFunctionName(name) {
		p.report(diag.KindFnReservedName, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}

	params, ni, ok := p.parseParamList(toks, i, ln.pos)
	if !ok {
		p.report(diag.KindFnMainWrongSignature, ln.pos, nil)
		return consumed
	}
	i = ni

	var returns []*typesys.Type
	var tupleWithoutParens bool
	if i < len(toks) && toks[i].Kind == token.ARROW {
		i++
		t, rni, rok := p.parseTypeRef(toks, i)
		if rok {
			i = rni
			if t.Kind() == typesys.KTuple {
				returns = t.Members()
			} else {
				returns = []*typesys.Type{t}
				for i < len(toks) && toks[i].Kind == token.COMMA {
					tupleWithoutParens = true
					i++
					extra, eni, eok := p.parseTypeRef(toks, i)
					if !eok {
						break
					}
					returns = append(returns, extra)
					i = eni
				}
			}
		}
	}
	if tupleWithoutParens {
		p.report(diag.KindFnCannotReturnTuple, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}

	var errSet string
	if i < len(toks) && toks[i].Kind == token.KW_THROW && i+1 < len(toks) && toks[i+1].Kind == token.IDENTIFIER {
		errSet = toks[i+1].Text()
		i += 2
	}

	def := &ast.FunctionDef{
		Pos: astPos(p.file, ln.pos, 0), Name: name, Aligned: aligned, Const: isConst,
		Params: params, Returns: returns, ErrorSet: errSet,
	}

	if name == "main" {
		def.IsMainFunc = true
		if p.mainDeclared {
			p.report(diag.KindFnMainRedefinition, ln.pos, nil)
		}
		p.mainDeclared = true
		if len(params) > 1 {
			p.report(diag.KindFnMainTooManyArgs, ln.pos, nil)
		} else if len(params) == 1 && !isStrArray(params[0].Type) {
			p.report(diag.KindFnMainWrongArgType, ln.pos, func(d *diag.Diagnostic) { d.Expected = "str[]"; d.Got = params[0].Type.String() })
		}
		if errSet != "" {
			p.report(diag.KindFnMainErrSet, ln.pos, nil)
		}
		if len(returns) > 0 {
			p.report(diag.KindFnMainNoReturns, ln.pos, nil)
		}
	}

	if p.funcNames[name] {
		p.report(diag.KindFunctionRedefinition, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
	}
	p.funcNames[name] = true

	arena := newArenaWithParams(params)
	def.ScopeID = scopeGlobal
	def.Body = p.parseBody(body, arena, def.ScopeID)

	p.node.add(def, name)
	return consumed
}

// scopeGlobal is the root scope id every function body begins parsing
// statements in (its parameters already declared there).
const scopeGlobal = 0

func isStrArray(t *typesys.Type) bool {
	return t != nil && t.Kind() == typesys.KArray && t.Elem() != nil && t.Elem().IsPrimitive() && t.Elem().Primitive() == typesys.Str
}

// parseParamList parses a parenthesized, comma-separated `[mut] TYPE
// NAME` list starting at toks[i] (toks[i] must be LPAREN).
func (p *Parser) parseParamList(toks token.List, i int, pos token.Position) ([]ast.Param, int, bool) {
	if i >= len(toks) || toks[i].Kind != token.LPAREN {
		return nil, i, false
	}
	i++
	var params []ast.Param
	for i < len(toks) && toks[i].Kind != token.RPAREN {
		var mutable bool
		if toks[i].Kind == token.KW_MUT {
			mutable = true
			i++
		}
		t, ni, ok := p.parseTypeRef(toks, i)
		if !ok {
			return nil, i, false
		}
		i = ni
		if i >= len(toks) || toks[i].Kind != token.IDENTIFIER {
			return nil, i, false
		}
		params = append(params, ast.Param{Name: toks[i].Text(), Type: t, Mutable: mutable})
		i++
		if i < len(toks) && toks[i].Kind == token.COMMA {
			i++
		}
	}
	if i >= len(toks) || toks[i].Kind != token.RPAREN {
		return nil, i, false
	}
	i++
	return params, i, true
}
