package parser

import (
	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/scope"
	"github.com/standardbeagle/flintc/internal/token"
)

// parseBody implements spec.md §4.3's body-parsing driver: each line at
// the body's own indent level is classified by its terminator (`;` for a
// simple statement, `:` for a scoped one whose nested lines are
// extracted recursively), with consecutive `if`/`else if`/`else` lines
// accumulated into a single IfStmt arm chain.
func (p *Parser) parseBody(lines []line, arena *scope.Arena, scopeID int) []ast.Statement {
	if len(lines) == 0 {
		return nil
	}
	bodyLevel := lines[0].level

	var stmts []ast.Statement
	var pendingIf *ast.IfStmt
	var lastWasCallable bool

	i := 0
	for i < len(lines) {
		ln := lines[i]
		if ln.level != bodyLevel {
			i++
			continue
		}
		term, ok := lineTerminator(ln.tokens)
		if !ok {
			i++
			continue
		}

		if term == token.SEMICOLON {
			stmt := p.parseSimpleStatement(ln, arena, scopeID)
			if stmt != nil {
				stmts = append(stmts, stmt)
			}
			_, lastWasCallable = stmt.(*ast.ExpressionStmt)
			pendingIf = nil
			i++
			continue
		}

		nested := extractBody(lines, i)
		consumed := 1 + len(nested)
		kw := leadingKeyword(ln.tokens)

		switch kw {
		case token.KW_IF:
			childScope := arena.Push(scopeID)
			arm := ast.IfArm{
				Condition: p.parseCondition(ln, 1, arena, childScope),
				Body:      p.parseBody(nested, arena, childScope),
			}
			pendingIf = &ast.IfStmt{Pos: astPos(p.file, ln.pos, 0), Scope: scopeID, Arms: []ast.IfArm{arm}}
			stmts = append(stmts, pendingIf)
			lastWasCallable = false

		case token.KW_ELSE:
			elseIf := len(ln.tokens) > 1 && ln.tokens[1].Kind == token.KW_IF
			if pendingIf == nil {
				if elseIf {
					p.report(diag.KindStmtIfChainMissingIf, ln.pos, nil)
				} else {
					p.report(diag.KindStmtDanglingElse, ln.pos, nil)
				}
				i += consumed
				continue
			}
			childScope := arena.Push(scopeID)
			var cond ast.Expression
			if elseIf {
				cond = p.parseCondition(ln, 2, arena, childScope)
			}
			pendingIf.Arms = append(pendingIf.Arms, ast.IfArm{Condition: cond, Body: p.parseBody(nested, arena, childScope)})
			lastWasCallable = false

		case token.KW_WHILE:
			childScope := arena.Push(scopeID)
			stmts = append(stmts, &ast.WhileStmt{
				Pos: astPos(p.file, ln.pos, 0), Scope: scopeID,
				Condition: p.parseCondition(ln, 1, arena, childScope),
				Body:      p.parseBody(nested, arena, childScope),
			})
			pendingIf, lastWasCallable = nil, false

		case token.KW_FOR, token.KW_PARALLEL:
			stmts = append(stmts, p.parseForLike(ln, nested, arena, scopeID))
			pendingIf, lastWasCallable = nil, false

		case token.KW_CATCH:
			if !lastWasCallable {
				p.report(diag.KindStmtDanglingCatch, ln.pos, nil)
			}
			childScope := arena.Push(scopeID)
			stmts = append(stmts, &ast.CatchStmt{Pos: astPos(p.file, ln.pos, 0), Scope: scopeID, Body: p.parseBody(nested, arena, childScope)})
			pendingIf, lastWasCallable = nil, false

		default:
			pendingIf, lastWasCallable = nil, false
		}
		i += consumed
	}
	return stmts
}

// parseCondition parses the boolean expression between a header keyword
// (at toks[from]) and its trailing `:`, declaring its childScope so
// names introduced mid-condition (none in Flint) are consistent.
func (p *Parser) parseCondition(ln line, from int, arena *scope.Arena, childScope int) ast.Expression {
	toks := ln.tokens
	end := len(toks) - 1 // drop trailing ':'
	if from >= end {
		return nil
	}
	ep := p.newExprParser(toks[from:end], arena, childScope)
	return ep.parseExpression(0)
}

// parseSimpleStatement classifies and parses one `;`-terminated body
// line: declaration (explicit/inferred), assignment, return, throw, or a
// bare expression statement.
func (p *Parser) parseSimpleStatement(ln line, arena *scope.Arena, scopeID int) ast.Statement {
	toks := ln.tokens
	body := toks[:len(toks)-1] // drop trailing ';'
	if len(body) == 0 {
		return nil
	}
	pos := astPos(p.file, ln.pos, 0)

	switch body[0].Kind {
	case token.KW_RETURN:
		var vals []ast.Expression
		if len(body) > 1 {
			for _, seg := range splitTopLevelCommas(body[1:]) {
				if len(seg) == 0 {
					continue
				}
				ep := p.newExprParser(seg, arena, scopeID)
				vals = append(vals, ep.parseExpression(0))
			}
		}
		return &ast.ReturnStmt{Pos: pos, Scope: scopeID, Values: vals}

	case token.KW_THROW:
		var val ast.Expression
		if len(body) > 1 {
			ep := p.newExprParser(body[1:], arena, scopeID)
			val = ep.parseExpression(0)
		}
		return &ast.ThrowStmt{Pos: pos, Scope: scopeID, Value: val}
	}

	if body[0].Kind == token.IDENTIFIER && len(body) > 1 && body[1].Kind == token.COLON_ASSIGN {
		name := body[0].Text()
		ep := p.newExprParser(body[2:], arena, scopeID)
		val := ep.parseExpression(0)
		if arena.DeclaredInScope(scopeID, name) {
			p.report(diag.KindVarRedefinition, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
		}
		arena.Declare(scopeID, scope.Variable{Name: name, Type: val.Type(), DeclScope: scopeID, Mutable: true})
		return &ast.DeclarationStmt{Pos: pos, Scope: scopeID, Name: name, Type: val.Type(), Value: val, Inferred: true, Mutable: true}
	}

	if body[0].Kind == token.IDENTIFIER && len(body) > 1 && body[1].Kind == token.ASSIGN {
		name := body[0].Text()
		ep := p.newExprParser(body[2:], arena, scopeID)
		val := ep.parseExpression(0)
		if v, _, found := arena.Resolve(scopeID, name); found {
			if !v.Mutable {
				p.report(diag.KindVarMutatingConst, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
			}
			v.Mutated = true
		} else {
			p.report(diag.KindVarNotDeclared, ln.pos, func(d *diag.Diagnostic) {
				d.Name = name
				d.Suggestions = diag.Suggest(name, arena.VisibleNames(scopeID))
			})
		}
		return &ast.AssignmentStmt{Pos: pos, Scope: scopeID, Name: name, Value: val}
	}

	if t, ti, ok := p.parseTypeRef(body, 0); ok && ti < len(body) {
		mutable := false
		j := ti
		if j < len(body) && body[j].Kind == token.KW_MUT {
			mutable = true
			j++
		}
		if j+1 < len(body) && body[j].Kind == token.IDENTIFIER && body[j+1].Kind == token.ASSIGN {
			name := body[j].Text()
			ep := p.newExprParser(body[j+2:], arena, scopeID)
			val := ep.parseExpression(0)
			if arena.DeclaredInScope(scopeID, name) {
				p.report(diag.KindVarRedefinition, ln.pos, func(d *diag.Diagnostic) { d.Name = name })
			}
			arena.Declare(scopeID, scope.Variable{Name: name, Type: t, DeclScope: scopeID, Mutable: mutable})
			return &ast.DeclarationStmt{Pos: pos, Scope: scopeID, Name: name, Type: t, Value: val, Mutable: mutable}
		}
	}

	ep := p.newExprParser(body, arena, scopeID)
	return &ast.ExpressionStmt{Pos: pos, Scope: scopeID, Value: ep.parseExpression(0)}
}

// parseForLike parses both the C-style `for INIT; COND; STEP:` form and
// the enhanced `[parallel] for NAME [, NAME] in EXPR:` form.
func (p *Parser) parseForLike(ln line, body []line, arena *scope.Arena, scopeID int) ast.Statement {
	toks := ln.tokens
	pos := astPos(p.file, ln.pos, 0)
	parallel := toks[0].Kind == token.KW_PARALLEL
	from := 1
	if parallel {
		from = 2 // `parallel for`
	}
	end := len(toks) - 1 // drop ':'
	childScope := arena.Push(scopeID)

	hasIn := false
	for k := from; k < end; k++ {
		if toks[k].Kind == token.KW_IN {
			hasIn = true
			break
		}
	}
	if hasIn {
		var idxVar, valVar string
		k := from
		first := toks[k].Text()
		k++
		if k < end && toks[k].Kind == token.COMMA {
			idxVar = first
			k++
			valVar = toks[k].Text()
			k++
		} else {
			valVar = first
		}
		for k < end && toks[k].Kind != token.KW_IN {
			k++
		}
		k++ // consume `in`
		ep := p.newExprParser(toks[k:end], arena, childScope)
		iterable := ep.parseExpression(0)
		if idxVar != "" {
			arena.Declare(childScope, scope.Variable{Name: idxVar, DeclScope: childScope, Mutable: false})
		}
		arena.Declare(childScope, scope.Variable{Name: valVar, DeclScope: childScope, Mutable: false})
		return &ast.EnhancedForStmt{
			Pos: pos, Scope: scopeID, IndexVar: idxVar, ValueVar: valVar,
			Iterable: iterable, Body: p.parseBody(body, arena, childScope), Parallel: parallel,
		}
	}

	// C-style: for INIT; COND; STEP:
	parts := splitOnSemicolons(toks[from:end])
	var initStmt, stepStmt ast.Statement
	var cond ast.Expression
	if len(parts) > 0 && len(parts[0]) > 0 {
		initStmt = p.parseSimpleStatement(line{tokens: append(append(token.List{}, parts[0]...), token.PositionedToken{Kind: token.SEMICOLON}), pos: ln.pos, level: ln.level}, arena, childScope)
	}
	if len(parts) > 1 && len(parts[1]) > 0 {
		ep := p.newExprParser(parts[1], arena, childScope)
		cond = ep.parseExpression(0)
	}
	if len(parts) > 2 && len(parts[2]) > 0 {
		stepStmt = p.parseSimpleStatement(line{tokens: append(append(token.List{}, parts[2]...), token.PositionedToken{Kind: token.SEMICOLON}), pos: ln.pos, level: ln.level}, arena, childScope)
	}
	return &ast.ForStmt{Pos: pos, Scope: scopeID, Init: initStmt, Condition: cond, Step: stepStmt, Body: p.parseBody(body, arena, childScope)}
}

func splitOnSemicolons(toks token.List) []token.List {
	var out []token.List
	start := 0
	for i, t := range toks {
		if t.Kind == token.SEMICOLON {
			out = append(out, toks[start:i])
			start = i + 1
		}
	}
	out = append(out, toks[start:])
	return out
}
