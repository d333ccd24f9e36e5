package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indentToken(line, level int) PositionedToken {
	return PositionedToken{Kind: INDENT, Pos: Position{Line: line, Column: level}}
}

func TestLeadingIndents_ReadsDepthFromSingleIndentToken(t *testing.T) {
	list := List{
		indentToken(1, 0),
		NewToken(IDENTIFIER, Position{Line: 1, Column: 1}, EmptyLexeme),
		NewToken(EOL, Position{Line: 1, Column: 2}, EmptyLexeme),
		indentToken(2, 20),
		NewToken(IDENTIFIER, Position{Line: 2, Column: 21}, EmptyLexeme),
	}

	got, ok := list.LeadingIndents(2)
	require.True(t, ok)
	assert.Equal(t, 20, got, "a deeply nested indent (20 levels) must report 20, not 0 or 1")
}

func TestLeadingIndents_MissingLineReportsNotOK(t *testing.T) {
	list := List{indentToken(1, 0)}
	_, ok := list.LeadingIndents(5)
	assert.False(t, ok)
}

func TestLeadingIndents_LineWithNoIndentTokenIsZero(t *testing.T) {
	list := List{NewToken(EOF, Position{Line: 1, Column: 1}, EmptyLexeme)}
	got, ok := list.LeadingIndents(1)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestLineRange_FindsContiguousRunForLine(t *testing.T) {
	list := List{
		indentToken(1, 0),
		NewToken(IDENTIFIER, Position{Line: 1, Column: 1}, EmptyLexeme),
		NewToken(EOL, Position{Line: 1, Column: 2}, EmptyLexeme),
		indentToken(2, 1),
	}
	rng, ok := list.LineRange(1)
	require.True(t, ok)
	assert.Equal(t, Slice{Begin: 0, End: 3}, rng)
}

func TestSlice_ViewAndSub(t *testing.T) {
	list := List{
		NewToken(IDENTIFIER, Position{Line: 1, Column: 1}, EmptyLexeme),
		NewToken(LPAREN, Position{Line: 1, Column: 2}, EmptyLexeme),
		NewToken(RPAREN, Position{Line: 1, Column: 3}, EmptyLexeme),
	}
	whole := Whole(list)
	assert.Equal(t, 3, whole.Len())
	assert.False(t, whole.IsEmpty())

	sub := whole.Sub(1, 2)
	assert.Equal(t, List{list[1]}, sub.View(list))
}

func TestNewTypeToken_TextRendersInternedTypeName(t *testing.T) {
	tok := NewTypeToken(Position{Line: 1, Column: 1}, stubType("i32"))
	assert.Equal(t, TYPE, tok.Kind)
	assert.Equal(t, "i32", tok.Text())
	assert.True(t, tok.Lexeme.IsEmpty())
}

type stubType string

func (s stubType) String() string { return strings.TrimSpace(string(s)) }
