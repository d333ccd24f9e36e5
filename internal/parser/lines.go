package parser

import (
	"github.com/standardbeagle/flintc/internal/lexer"
	"github.com/standardbeagle/flintc/internal/token"
)

// line is one logical source line after the lexer's INDENT/EOL framing:
// its indent level and the tokens between the INDENT and the line's
// terminating EOL (or EOF).
type line struct {
	level  int
	tokens token.List
	pos    token.Position
}

// splitLines regroups a flat token list (as produced by internal/lexer)
// into per-line slices, the unit the top-level and body parsing loops
// both operate on (spec.md §4.3 "definition slice: all tokens on the
// first non-empty line of the remainder").
func splitLines(tokens token.List) []line {
	var out []line
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case token.INDENT:
			level := lexer.IndentLevel(tok)
			pos := tok.Pos
			i++
			start := i
			for i < len(tokens) && tokens[i].Kind != token.EOL && tokens[i].Kind != token.EOF {
				i++
			}
			out = append(out, line{level: level, tokens: tokens[start:i], pos: pos})
			if i < len(tokens) && tokens[i].Kind == token.EOL {
				i++
			}
		case token.EOF:
			return out
		default:
			i++
		}
	}
	return out
}
