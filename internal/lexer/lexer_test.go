package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/token"
	"github.com/standardbeagle/flintc/internal/typesys"
)

func kinds(list token.List) []token.Kind {
	out := make([]token.Kind, len(list))
	for i, t := range list {
		out[i] = t.Kind
	}
	return out
}

func TestLex_HelloWorld(t *testing.T) {
	src := "func main():\n    print(\"hello world\");\n"
	list, diags := Lex([]byte(src), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)

	got := kinds(list)
	assert.Contains(t, got, token.KW_FUNC)
	assert.Contains(t, got, token.IDENTIFIER)
	assert.Contains(t, got, token.LPAREN)
	assert.Contains(t, got, token.RPAREN)
	assert.Contains(t, got, token.COLON)
	assert.Contains(t, got, token.STR_VALUE)
	assert.Contains(t, got, token.SEMICOLON)
	assert.Equal(t, token.EOF, got[len(got)-1])
}

func TestLex_EmptyLinesCollapsed(t *testing.T) {
	src := "i32 x = 1;\n\n\ni32 y = 2;\n"
	list, diags := Lex([]byte(src), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)

	eols := 0
	for _, tk := range list {
		if tk.Kind == token.EOL {
			eols++
		}
	}
	assert.Equal(t, 2, eols, "blank lines must not produce EOL tokens")
}

func TestLex_IndentLevels(t *testing.T) {
	src := "func f():\n    i32 x = 1;\n        i32 y = 2;\n"
	list, _ := Lex([]byte(src), source.Empty, typesys.NewTable(), false)

	var levels []int
	for _, tk := range list {
		if tk.Kind == token.INDENT {
			levels = append(levels, IndentLevel(tk))
		}
	}
	require.Len(t, levels, 3)
	assert.Equal(t, []int{0, 1, 2}, levels)
}

func TestLex_NumberLiterals(t *testing.T) {
	list, diags := Lex([]byte("1_000; 3.14; 2.;"), source.Empty, typesys.NewTable(), false)
	require.Len(t, diags, 1)

	var values []token.Kind
	for _, tk := range list {
		if tk.Kind == token.INT_VALUE || tk.Kind == token.FLINT_VALUE {
			values = append(values, tk.Kind)
		}
	}
	assert.Equal(t, []token.Kind{token.INT_VALUE, token.FLINT_VALUE, token.FLINT_VALUE}, values)
}

func TestLex_InvalidIdentifierPrefix(t *testing.T) {
	_, diags := Lex([]byte("i32 __flint_internal = 0;"), source.Empty, typesys.NewTable(), false)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message(), "reserved prefix")
}

func TestLex_UnterminatedString(t *testing.T) {
	_, diags := Lex([]byte("str s = \"oops;\n"), source.Empty, typesys.NewTable(), false)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message(), "unterminated string")
}

func TestLex_UnterminatedBlockComment(t *testing.T) {
	_, diags := Lex([]byte("/* never closes"), source.Empty, typesys.NewTable(), false)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message(), "unterminated multiline comment")
}

func TestLex_InterpolatedStringWithNestedQuote(t *testing.T) {
	src := `str s = $"value: ${f("x")}";`
	list, diags := Lex([]byte(src), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)

	found := false
	for _, tk := range list {
		if tk.Kind == token.STR_VALUE {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLex_PrimitiveKeywordsEmitTypeTokens(t *testing.T) {
	list, diags := Lex([]byte("i32 x = 1; f64 y = 2.0;"), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)

	var typeToks []token.PositionedToken
	for _, tk := range list {
		if tk.Kind == token.TYPE {
			typeToks = append(typeToks, tk)
		}
	}
	require.Len(t, typeToks, 2)
	assert.Equal(t, "i32", typeToks[0].Text())
	assert.Equal(t, "f64", typeToks[1].Text())
	assert.True(t, typeToks[0].Lexeme.IsEmpty(), "TYPE tokens must not carry a lexeme (spec.md §3 invariant 2)")

	for _, tk := range list {
		assert.NotEqual(t, token.KW_I32, tk.Kind, "i32 must never lex as a keyword token")
	}
}

func TestLex_TwoCharOperators(t *testing.T) {
	list, _ := Lex([]byte("a := 1; a += 1; a == 1; a <= 1;"), source.Empty, typesys.NewTable(), false)
	got := kinds(list)
	assert.Contains(t, got, token.COLON_ASSIGN)
	assert.Contains(t, got, token.PLUS_ASSIGN)
	assert.Contains(t, got, token.EQ)
	assert.Contains(t, got, token.LTE)
}
