package lexer

import (
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/token"
)

// twoCharOps is tried before single-character punctuation, mirroring the
// signature engine's own greedy token scanning (spec.md §4.1
// "Punctuation: try the longest operator first").
var twoCharOps = map[string]token.Kind{
	"::": token.DOUBLE_COLON,
	":=": token.COLON_ASSIGN,
	"+=": token.PLUS_ASSIGN, "-=": token.MINUS_ASSIGN,
	"*=": token.MUL_ASSIGN, "/=": token.DIV_ASSIGN, "%=": token.MOD_ASSIGN,
	"==": token.EQ, "!=": token.NEQ, "<=": token.LTE, ">=": token.GTE,
	"&&": token.AND_AND, "||": token.OR_OR,
	"<<": token.SHL, ">>": token.SHR,
	"->": token.ARROW, "|>": token.PIPE,
	"++": token.INCREMENT, "--": token.DECREMENT,
}

func (l *lexer) matchTwoChar() (token.Kind, bool) {
	if l.atEOF() || l.pos+1 >= len(l.src) {
		return 0, false
	}
	s := string(l.src[l.pos : l.pos+2])
	k, ok := twoCharOps[s]
	return k, ok
}

var oneCharOps = map[byte]token.Kind{
	'(': token.LPAREN, ')': token.RPAREN,
	'{': token.LBRACE, '}': token.RBRACE,
	'[': token.LBRACKET, ']': token.RBRACKET,
	',': token.COMMA, ';': token.SEMICOLON, ':': token.COLON,
	'.': token.DOT, '$': token.DOLLAR, '@': token.AT, '?': token.QUESTION,
	'=': token.ASSIGN,
	'+': token.PLUS, '-': token.MINUS, '*': token.STAR, '/': token.SLASH,
	'%': token.PERCENT, '^': token.CARET, '!': token.BANG,
	'<': token.LT, '>': token.GT,
	'&': token.AMP, '~': token.TILDE,
}

func (l *lexer) lexOperator() {
	if k, ok := l.matchTwoChar(); ok {
		start := l.pos
		l.advance()
		l.advance()
		l.emit(k, start, 2)
		return
	}

	start := l.pos
	c := l.advance()

	if c == '|' {
		l.report(diag.KindUnexpectedPipe, nil)
		l.emit(token.BAR, start, 1)
		return
	}
	if k, ok := oneCharOps[c]; ok {
		l.emit(k, start, 1)
		return
	}
	l.report(diag.KindUnexpectedCharacter, func(d *diag.Diagnostic) { d.TokenText = string(c) })
}
