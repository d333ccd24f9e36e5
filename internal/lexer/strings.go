package lexer

import (
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/token"
)

// lexString scans a string literal starting at start (the position of a
// leading '$' for an interpolated string, or the opening '"' otherwise).
// l.pos must be positioned at the opening '"' when called. The full
// literal, quotes and all, becomes the STR_VALUE lexeme; interpolation
// and escape decoding are left to the parser, which re-walks the text.
//
// Interpolated strings (`$"...${ EXPR }..."`) may embed arbitrary
// expressions, including ones containing their own quoted strings and
// braces, inside `${ }`. The lexer tracks brace depth so a '"' inside an
// embedded expression does not prematurely close the outer string; this
// is a deliberately simple nesting model (brace-depth plus a single
// nested-quote flag) rather than a full recursive scan — nested
// interpolation inside an embedded string's own `${ }` is not tracked
// (spec.md §9 open question: interpolation nesting is shallow by design).
func (l *lexer) lexString(start int, interpolated bool) {
	l.advance() // opening '"'

	depth := 0
	inNestedQuote := false

	for {
		if l.atEOF() || l.peek() == '\n' {
			l.report(diag.KindUnterminatedString, nil)
			l.emit(token.STR_VALUE, start, l.pos-start)
			return
		}
		c := l.peek()

		if c == '\\' {
			l.advance()
			if !l.atEOF() {
				l.advance()
			}
			continue
		}

		if interpolated && depth == 0 && c == '$' && l.peekAt(1) == '{' {
			l.advance()
			l.advance()
			depth = 1
			continue
		}

		if depth > 0 {
			switch {
			case c == '"':
				inNestedQuote = !inNestedQuote
				l.advance()
			case !inNestedQuote && c == '{':
				depth++
				l.advance()
			case !inNestedQuote && c == '}':
				depth--
				l.advance()
			default:
				l.advance()
			}
			continue
		}

		if c == '"' {
			l.advance()
			l.emit(token.STR_VALUE, start, l.pos-start)
			return
		}
		l.advance()
	}
}

// lexChar scans a single character literal, 'x', with escape sequences.
func (l *lexer) lexChar() {
	start := l.pos
	l.advance() // opening '\''

	if l.atEOF() || l.peek() == '\'' {
		l.report(diag.KindLitExpectedCharValue, nil)
		if !l.atEOF() {
			l.advance()
		}
		l.emit(token.CHAR_VALUE, start, l.pos-start)
		return
	}

	contentStart := l.pos
	if l.peek() == '\\' {
		l.advance()
		if !l.atEOF() {
			l.advance()
		}
	} else {
		l.advance()
	}

	if l.atEOF() || l.peek() != '\'' {
		// Keep scanning to the closing quote (or EOL) so we can report
		// the literal's full erroneous text.
		for !l.atEOF() && l.peek() != '\'' && l.peek() != '\n' {
			l.advance()
		}
		text := string(l.src[contentStart:l.pos])
		if l.peek() == '\'' {
			l.advance()
		}
		l.report(diag.KindLitCharLongerThanSingleCharacter, func(d *diag.Diagnostic) { d.TokenText = text })
		l.emit(token.CHAR_VALUE, start, l.pos-start)
		return
	}

	l.advance() // closing '\''
	l.emit(token.CHAR_VALUE, start, l.pos-start)
}
