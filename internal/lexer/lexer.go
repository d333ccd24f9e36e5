// Package lexer turns Flint source bytes into a token.List (spec.md
// §4.1 "Lexer": "given a source string and a file name, produce a token
// list... or fail with a lexing error carrying line/column"). Grounded on
// the teacher's hand-rolled scanning style (internal/parser's
// character-by-character lexing helpers) adapted to Flint's
// indentation-structured layout; like every other stage, the lexer never
// panics and funnels every failure through internal/diag.Diagnostic
// rather than a returned error (SPEC_FULL.md §4.1 "ambient stack
// binding").
package lexer

import (
	"strings"

	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/token"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// TabSize is the fixed tab-expansion width used for indentation (spec.md
// §4.1 "TAB_SIZE = 4").
const TabSize = 4

// primitiveKinds maps each primitive keyword's Kind (token.Primitives'
// values) to the typesys.Primitive it interns as. Consulted once
// token.Primitives has matched an identifier's text, so the lexer can
// emit a TYPE token carrying the interned descriptor rather than a bare
// keyword token (spec.md §4.1: "look the identifier up in a primitives
// table (yields a TYPE token carrying the interned type descriptor)").
var primitiveKinds = map[token.Kind]typesys.Primitive{
	token.KW_I32: typesys.I32, token.KW_U32: typesys.U32,
	token.KW_I64: typesys.I64, token.KW_U64: typesys.U64,
	token.KW_F32: typesys.F32, token.KW_F64: typesys.F64,
	token.KW_BOOL: typesys.Bool, token.KW_CHAR: typesys.Char,
	token.KW_STR: typesys.Str, token.KW_VOID: typesys.Void,
	token.KW_I32X4: typesys.I32x4, token.KW_F32X4: typesys.F32x4, token.KW_F64X2: typesys.F64x2,
}

type lexer struct {
	file   source.FileHash
	src    []byte
	types  *typesys.Table
	pos    int
	line   int
	col    int
	debug  bool
	tokens token.List
	diags  []*diag.Diagnostic
}

// Lex scans src (the full contents of file) into a token list, reporting
// every recoverable problem as a Diagnostic rather than aborting —
// matching spec.md §7's "a bad token does not stop the rest of the file
// from being lexed" failure policy. The returned list always ends with a
// single EOF token. types is the intern table primitive type keywords are
// resolved against (spec.md §3 invariant 2: every TYPE token carries an
// interned type, never a lexeme).
func Lex(src []byte, file source.FileHash, types *typesys.Table, debugEnabled bool) (token.List, []*diag.Diagnostic) {
	l := &lexer{file: file, src: normalizeNewlines(src), types: types, line: 1, col: 1, debug: debugEnabled}
	l.run()
	return l.collapseEmptyLines(), l.diags
}

func normalizeNewlines(src []byte) []byte {
	if !strings.Contains(string(src), "\r\n") {
		return src
	}
	return []byte(strings.ReplaceAll(string(src), "\r\n", "\n"))
}

func (l *lexer) run() {
	atLineStart := true
	for !l.atEOF() {
		if atLineStart {
			l.emitIndent()
			atLineStart = false
		}
		c := l.peek()
		switch {
		case c == '\n':
			l.advance()
			l.emit(token.EOL, l.pos-1, 1)
			l.line++
			l.col = 1
			atLineStart = true
		case c == ' ' || c == '\t':
			l.advance()
		case c == '/' && l.peekAt(1) == '/':
			l.skipLineComment()
		case c == '/' && l.peekAt(1) == '*':
			l.skipBlockComment()
		case isDigit(c):
			l.lexNumber()
		case c == '"':
			l.lexString(l.pos, false)
		case c == '$' && l.peekAt(1) == '"':
			start := l.pos
			l.advance() // consume '$'
			l.lexString(start, true)
		case c == '\'':
			l.lexChar()
		case isIdentStart(c):
			l.lexIdentifier()
		default:
			l.lexOperator()
		}
	}
	l.emit(token.EOF, l.pos, 0)
}

func (l *lexer) atEOF() bool { return l.pos >= len(l.src) }

func (l *lexer) peek() byte {
	if l.atEOF() {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\t' {
		l.col += TabSize
	} else {
		l.col++
	}
	return c
}

// emit appends a token whose lexeme spans [start, start+length) of src.
func (l *lexer) emit(kind token.Kind, start, length int) {
	lex := token.NewLexeme(l.src, start, length)
	l.tokens = append(l.tokens, token.NewToken(kind, token.Position{Line: l.line, Column: l.col}, lex))
}

func (l *lexer) report(kind diag.Kind, fill func(*diag.Diagnostic)) {
	d := diag.Diagnostic{Kind: kind, Stage: diag.StageLexing, File: l.file, Line: l.line, Column: l.col}
	if fill != nil {
		fill(&d)
	}
	l.diags = append(l.diags, diag.Emit(d, l.debug))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func (l *lexer) skipLineComment() {
	for !l.atEOF() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *lexer) skipBlockComment() {
	l.advance()
	l.advance() // consume "/*"
	for {
		if l.atEOF() {
			l.report(diag.KindUnterminatedMultilineComment, nil)
			return
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance()
			l.advance()
			return
		}
		if l.peek() == '\n' {
			l.line++
			l.col = 1
			l.pos++
			continue
		}
		l.advance()
	}
}

func (l *lexer) lexIdentifier() {
	start := l.pos
	for !l.atEOF() && isIdentPart(l.peek()) {
		l.advance()
	}
	text := string(l.src[start:l.pos])

	if strings.HasPrefix(text, "__flint_") || strings.HasPrefix(text, "__fip_") {
		l.report(diag.KindInvalidIdentifier, func(d *diag.Diagnostic) { d.Name = text })
	}

	if kind, ok := token.Primitives[text]; ok {
		t := l.types.Primitive(primitiveKinds[kind])
		l.tokens = append(l.tokens, token.NewTypeToken(token.Position{Line: l.line, Column: l.col}, t))
		return
	}
	if kind, ok := token.Keywords[text]; ok {
		l.emit(kind, start, l.pos-start)
		return
	}
	l.emit(token.IDENTIFIER, start, l.pos-start)
}
