package lexer

import "github.com/standardbeagle/flintc/internal/token"

// emitIndent measures the current line's leading whitespace (expanding
// '\t' to TabSize columns, spec.md §3 invariant 1) and appends a single
// INDENT token for the line. The computed indent level is stashed in
// the token's Position.Column — INDENT tokens have no other use for a
// column, since they always start a line — while the Lexeme still spans
// the literal whitespace bytes for diagnostic rendering.
func (l *lexer) emitIndent() {
	start := l.pos
	level := 0
	for !l.atEOF() {
		switch l.peek() {
		case ' ':
			level++
			l.advance()
			continue
		case '\t':
			level += TabSize
			l.advance()
			continue
		}
		break
	}
	lex := token.NewLexeme(l.src, start, l.pos-start)
	l.tokens = append(l.tokens, token.PositionedToken{
		Kind:   token.INDENT,
		Pos:    token.Position{Line: l.line, Column: level / TabSize},
		Lexeme: lex,
	})
}

// IndentLevel reads the indent level a lexer stashed in an INDENT
// token's Position.Column.
func IndentLevel(t token.PositionedToken) int {
	if t.Kind != token.INDENT {
		return 0
	}
	return t.Pos.Column
}

// collapseEmptyLines removes INDENT/EOL pairs that belong to blank or
// whitespace-only lines (spec.md §4.1: "empty lines are deleted after
// lexing — they carry no structural meaning once layout is resolved").
// A line is empty when its only tokens between an INDENT and the next
// EOL (or EOF) are nothing at all.
func (l *lexer) collapseEmptyLines() token.List {
	out := make(token.List, 0, len(l.tokens))
	i := 0
	for i < len(l.tokens) {
		t := l.tokens[i]
		if t.Kind == token.INDENT {
			// An INDENT immediately followed by EOL (or EOF) marks a
			// blank line; drop both.
			if i+1 < len(l.tokens) && l.tokens[i+1].Kind == token.EOL {
				i += 2
				continue
			}
			if i+1 < len(l.tokens) && l.tokens[i+1].Kind == token.EOF {
				i++
				continue
			}
		}
		out = append(out, t)
		i++
	}
	return out
}
