package parser

import (
	"strconv"
	"strings"

	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/corelib"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/scope"
	"github.com/standardbeagle/flintc/internal/signature"
	"github.com/standardbeagle/flintc/internal/token"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// binaryPrecedence implements spec.md §4.3's precedence table (low to
// high: logical, equality/relational, additive, multiplicative,
// exponent) as a precedence-climbing parser — the idiomatic Go
// realization of the "compare precedence to the running-best operator
// and split" description.
var binaryPrecedence = map[token.Kind]int{
	token.OR_OR: 1, token.AND_AND: 2,
	token.EQ: 3, token.NEQ: 3, token.LT: 3, token.LTE: 3, token.GT: 3, token.GTE: 3,
	token.PLUS: 4, token.MINUS: 4,
	token.STAR: 5, token.SLASH: 5, token.PERCENT: 5,
	token.CARET: 6,
}

var prefixUnaryOps = map[token.Kind]bool{
	token.BANG: true, token.MINUS: true, token.INCREMENT: true, token.DECREMENT: true,
}

// exprParser walks a flat token slice (one statement's expression
// portion, with no surrounding `;`/`:`) building an Expression tree.
type exprParser struct {
	p    *Parser
	toks token.List
	i    int

	arena   *scope.Arena
	scopeID int
}

func (p *Parser) newExprParser(toks token.List, arena *scope.Arena, scopeID int) *exprParser {
	return &exprParser{p: p, toks: toks, arena: arena, scopeID: scopeID}
}

func (e *exprParser) peek() token.PositionedToken {
	if e.i < len(e.toks) {
		return e.toks[e.i]
	}
	return token.PositionedToken{Kind: token.EOF}
}

func (e *exprParser) advance() token.PositionedToken {
	t := e.peek()
	e.i++
	return t
}

// parseExpression parses a full expression, stopping when the next
// token is not a binary operator of at least minPrec.
func (e *exprParser) parseExpression(minPrec int) ast.Expression {
	left := e.parseUnary()
	for {
		op := e.peek()
		prec, ok := binaryPrecedence[op.Kind]
		if !ok || prec < minPrec {
			return left
		}
		e.advance()
		right := e.parseExpression(prec + 1)
		left = e.combineBinary(left, op, right)
	}
}

func (e *exprParser) combineBinary(lhs ast.Expression, op token.PositionedToken, rhs ast.Expression) ast.Expression {
	result := &ast.BinaryOpExpr{Pos: lhs.Position(), Op: op.Text(), LHS: lhs, RHS: rhs}
	if lhs.Type() != nil && rhs.Type() != nil && !lhs.Type().Equal(rhs.Type()) {
		e.p.report(diag.KindExprBinopTypeMismatch, op.Pos, func(d *diag.Diagnostic) {
			d.Expected = lhs.Type().String()
			d.Got = rhs.Type().String()
		})
		return result // Resolved left nil: a type-mismatched binop has no usable result type
	}
	result.Resolved = lhs.Type()
	return result
}

func (e *exprParser) parseUnary() ast.Expression {
	tok := e.peek()
	if prefixUnaryOps[tok.Kind] {
		e.advance()
		operand := e.parseUnary()
		return &ast.UnaryOpExpr{Pos: e.posOf(tok), Op: tok.Text(), Operand: operand, Resolved: operand.Type()}
	}
	return e.parsePostfix()
}

func (e *exprParser) parsePostfix() ast.Expression {
	expr := e.parsePrimary()
	for e.peek().Kind == token.INCREMENT || e.peek().Kind == token.DECREMENT {
		op := e.advance()
		expr = &ast.UnaryOpExpr{Pos: expr.Position(), Op: op.Text(), Operand: expr, Postfix: true, Resolved: expr.Type()}
	}
	return expr
}

func (e *exprParser) posOf(tok token.PositionedToken) ast.Pos {
	return astPos(e.p.file, tok.Pos, 0)
}

func (e *exprParser) parsePrimary() ast.Expression {
	tok := e.peek()
	switch tok.Kind {
	case token.LPAREN:
		e.advance()
		inner := e.parseExpression(0)
		if e.peek().Kind == token.RPAREN {
			e.advance()
		}
		if _, nested := inner.(*ast.GroupExpr); nested {
			e.p.report(diag.KindExprNestedGroup, tok.Pos, nil)
		}
		return &ast.GroupExpr{Pos: e.posOf(tok), Inner: inner}

	case token.IDENTIFIER:
		if e.i+1 < len(e.toks) && e.toks[e.i+1].Kind == token.LPAREN {
			return e.parseCall()
		}
		e.advance()
		name := tok.Text()
		v, declScope, found := e.arena.Resolve(e.scopeID, name)
		if !found {
			e.p.report(diag.KindVarNotDeclared, tok.Pos, func(d *diag.Diagnostic) {
				d.Name = name
				d.Suggestions = diag.Suggest(name, e.arena.VisibleNames(e.scopeID))
			})
			return &ast.VariableExpr{Pos: e.posOf(tok), Name: name}
		}
		return &ast.VariableExpr{Pos: e.posOf(tok), Name: name, Resolved: v.Type, DeclScope: declScope}

	case token.INT_VALUE:
		e.advance()
		n, _ := strconv.ParseInt(strings.ReplaceAll(tok.Text(), "_", ""), 10, 64)
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitInt, IntVal: n, Resolved: e.p.types.Primitive(typesys.I32)}

	case token.FLINT_VALUE:
		e.advance()
		f, _ := strconv.ParseFloat(strings.ReplaceAll(tok.Text(), "_", ""), 64)
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitFloat, FloatVal: f, Resolved: e.p.types.Primitive(typesys.F64)}

	case token.STR_VALUE:
		e.advance()
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitString, StrVal: decodeStringLexeme(tok.Text()), Resolved: e.p.types.Primitive(typesys.Str)}

	case token.CHAR_VALUE:
		e.advance()
		r := decodeCharLexeme(tok.Text())
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitChar, CharVal: r, Resolved: e.p.types.Primitive(typesys.Char)}

	case token.KW_TRUE, token.KW_FALSE:
		e.advance()
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitBool, BoolVal: tok.Kind == token.KW_TRUE, Resolved: e.p.types.Primitive(typesys.Bool)}

	case token.KW_NONE:
		e.advance()
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitNone, Resolved: nil}

	default:
		e.advance()
		e.p.report(diag.KindExprUnknownLiteral, tok.Pos, func(d *diag.Diagnostic) { d.TokenText = tok.Text() })
		return &ast.LiteralExpr{Pos: e.posOf(tok), Kind: ast.LitNone}
	}
}

// parseCall implements spec.md §4.3 "Calls": locate the balanced `)`
// via the signature engine, split on top-level commas, resolve the
// callee against built-ins, this file's functions, then imported core
// modules.
func (e *exprParser) parseCall() ast.Expression {
	nameTok := e.advance()
	name := nameTok.Text()

	r, ok := signature.BalancedRangeExtraction(e.toks[e.i:], signature.BalanceParens.Inc, signature.BalanceParens.Dec)
	if !ok {
		e.p.report(diag.KindUnclosedParen, nameTok.Pos, nil)
		return &ast.CallExpr{Pos: e.posOf(nameTok), Name: name}
	}
	argToks := e.toks[e.i+1 : e.i+r.End-1]
	e.i += r.End

	var args []ast.Expression
	for _, seg := range splitTopLevelCommas(argToks) {
		if len(seg) == 0 {
			continue
		}
		sub := e.p.newExprParser(seg, e.arena, e.scopeID)
		args = append(args, sub.parseExpression(0))
	}

	call := &ast.CallExpr{Pos: e.posOf(nameTok), Name: name, Args: args}

	switch {
	case corelib.IsBuiltin(name):
		call.Target = ast.CallBuiltin
		ov := corelib.Builtins[name]
		if ov.HasReturn {
			call.Resolved = e.p.types.Primitive(ov.Returns)
		}
		if !ov.Variadic && len(ov.Params) != len(args) {
			e.p.report(diag.KindExprCallWrongArgumentCount, nameTok.Pos, func(d *diag.Diagnostic) {
				d.Name = name
				d.ArgExpected = len(ov.Params)
				d.ArgCount = len(args)
			})
		}
	case e.p.funcNames[name]:
		call.Target = ast.CallUserFunction
	default:
		if mod, fn, isCore := splitCoreCall(name, e.p.node.CoreModules); isCore {
			call.Target = ast.CallCoreModule
			call.CoreModule = mod
			call.Name = fn
		} else {
			e.p.report(diag.KindExprCallOfUndefinedFunction, nameTok.Pos, func(d *diag.Diagnostic) {
				d.Name = name
				d.Suggestions = diag.Suggest(name, append(corelib.AllNames(), e.p.funcNameList()...))
			})
		}
	}
	return call
}

// splitCoreCall recognizes a "Module.fn"-shaped call name against the
// set of core modules this file has imported.
func splitCoreCall(name string, imported []string) (mod, fn string, ok bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", "", false
	}
	mod, fn = name[:idx], name[idx+1:]
	for _, m := range imported {
		if m == mod {
			return mod, fn, corelib.IsCoreModule(mod)
		}
	}
	return "", "", false
}

// splitTopLevelCommas splits toks on commas that are not nested inside
// parens/brackets.
func splitTopLevelCommas(toks token.List) []token.List {
	var out []token.List
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.Kind {
		case token.LPAREN, token.LBRACKET:
			depth++
		case token.RPAREN, token.RBRACKET:
			depth--
		case token.COMMA:
			if depth == 0 {
				out = append(out, toks[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, toks[start:])
	return out
}

func decodeStringLexeme(raw string) string {
	s := raw
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return unescapeSequences(s)
}

func decodeCharLexeme(raw string) rune {
	s := raw
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	decoded := unescapeSequences(s)
	for _, r := range decoded {
		return r
	}
	return 0
}

func unescapeSequences(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '0':
				b.WriteByte(0)
			case '\\', '"', '\'':
				b.WriteByte(s[i])
			default:
				b.WriteByte(s[i])
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
