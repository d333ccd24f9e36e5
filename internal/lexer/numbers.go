package lexer

import (
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/token"
)

// lexNumber scans an integer or float literal. Underscore digit
// separators (e.g. 1_000_000) are accepted and simply left in the
// lexeme; the parser strips them when it converts text to a value
// (spec.md §4.1 "Numbers": "'_' separators are cosmetic only").
func (l *lexer) lexNumber() {
	start := l.pos
	l.consumeDigitRun()

	if l.peek() == '.' {
		if isDigit(l.peekAt(1)) {
			l.advance() // '.'
			l.consumeDigitRun()
			l.emit(token.FLINT_VALUE, start, l.pos-start)
			return
		}
		// A trailing '.' with no following digit: consume it so the
		// lexeme reflects what was actually scanned, but flag it —
		// Flint requires a digit after every decimal point.
		l.advance()
		l.report(diag.KindUnexpectedDigitAfterDot, nil)
		l.emit(token.FLINT_VALUE, start, l.pos-start)
		return
	}

	l.emit(token.INT_VALUE, start, l.pos-start)
}

func (l *lexer) consumeDigitRun() {
	for !l.atEOF() && (isDigit(l.peek()) || l.peek() == '_') {
		l.advance()
	}
}
