// Package token defines the Flint token model: the Kind enum, the
// positioned token with its dual lexeme/type payload, and the list/slice
// types the parser and signature engine operate over.
package token

// Kind enumerates every token the lexer can produce. Grouped by category
// to match how the lexer's lookup tables (punctuation, keywords,
// primitives) are organized.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF
	EOL
	INDENT

	IDENTIFIER
	INT_VALUE
	FLINT_VALUE // float literal
	STR_VALUE
	CHAR_VALUE

	// TYPE carries a resolved *typesys.Type instead of a lexeme; see
	// PositionedToken's payload invariant.
	TYPE

	// Punctuation
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	SEMICOLON
	COLON
	DOUBLE_COLON
	DOT
	DOLLAR
	PIPE
	AT
	QUESTION

	// Assignment
	ASSIGN
	COLON_ASSIGN
	PLUS_ASSIGN
	MINUS_ASSIGN
	MUL_ASSIGN
	DIV_ASSIGN
	MOD_ASSIGN

	// Arithmetic / unary
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	CARET // exponent
	INCREMENT
	DECREMENT
	BANG

	// Relational
	EQ
	NEQ
	LT
	LTE
	GT
	GTE

	// Logical
	AND_AND
	OR_OR

	// Bitwise
	AMP
	BAR
	TILDE
	SHL
	SHR

	// Arrow / returns
	ARROW

	// Keywords — declarations & definitions
	KW_USE
	KW_AS
	KW_DEF
	KW_DATA
	KW_FUNC
	KW_ENTITY
	KW_ENUM
	KW_ERROR
	KW_VARIANT
	KW_TEST
	KW_LINK
	KW_REQUIRES
	KW_EXTENDS
	KW_EXTERN
	KW_ALIGNED
	KW_CONST
	KW_MUT

	// Keywords — control flow
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_FOR
	KW_PARALLEL
	KW_IN
	KW_RETURN
	KW_THROW
	KW_CATCH

	// Keywords — primitive type names (also emitted as TYPE tokens once
	// looked up in the primitives table; retained here as the keyword
	// identity used by the lexer's lookup before interning).
	KW_I32
	KW_U32
	KW_I64
	KW_U64
	KW_F32
	KW_F64
	KW_BOOL
	KW_CHAR
	KW_STR
	KW_VOID

	// SIMD widths
	KW_I32X4
	KW_F32X4
	KW_F64X2

	// Literals
	KW_TRUE
	KW_FALSE
	KW_NONE
)

var kindNames = map[Kind]string{
	ILLEGAL:      "ILLEGAL",
	EOF:          "EOF",
	EOL:          "EOL",
	INDENT:       "INDENT",
	IDENTIFIER:   "IDENTIFIER",
	INT_VALUE:    "INT_VALUE",
	FLINT_VALUE:  "FLINT_VALUE",
	STR_VALUE:    "STR_VALUE",
	CHAR_VALUE:   "CHAR_VALUE",
	TYPE:         "TYPE",
	LPAREN:       "(",
	RPAREN:       ")",
	LBRACE:       "{",
	RBRACE:       "}",
	LBRACKET:     "[",
	RBRACKET:     "]",
	COMMA:        ",",
	SEMICOLON:    ";",
	COLON:        ":",
	DOUBLE_COLON: "::",
	DOT:          ".",
	DOLLAR:       "$",
	PIPE:         "|>",
	AT:           "@",
	QUESTION:     "?",
	ASSIGN:       "=",
	COLON_ASSIGN: ":=",
	PLUS_ASSIGN:  "+=",
	MINUS_ASSIGN: "-=",
	MUL_ASSIGN:   "*=",
	DIV_ASSIGN:   "/=",
	MOD_ASSIGN:   "%=",
	PLUS:         "+",
	MINUS:        "-",
	STAR:         "*",
	SLASH:        "/",
	PERCENT:      "%",
	CARET:        "^",
	INCREMENT:    "++",
	DECREMENT:    "--",
	BANG:         "!",
	EQ:           "==",
	NEQ:          "!=",
	LT:           "<",
	LTE:          "<=",
	GT:           ">",
	GTE:          ">=",
	AND_AND:      "&&",
	OR_OR:        "||",
	AMP:          "&",
	BAR:          "bitor",
	TILDE:        "~",
	SHL:          "<<",
	SHR:          ">>",
	ARROW:        "->",
	KW_USE:       "use",
	KW_AS:        "as",
	KW_DEF:       "def",
	KW_DATA:      "data",
	KW_FUNC:      "func",
	KW_ENTITY:    "entity",
	KW_ENUM:      "enum",
	KW_ERROR:     "error",
	KW_VARIANT:   "variant",
	KW_TEST:      "test",
	KW_LINK:      "link",
	KW_REQUIRES:  "requires",
	KW_EXTENDS:   "extends",
	KW_EXTERN:    "extern",
	KW_ALIGNED:   "aligned",
	KW_CONST:     "const",
	KW_MUT:       "mut",
	KW_IF:        "if",
	KW_ELSE:      "else",
	KW_WHILE:     "while",
	KW_FOR:       "for",
	KW_PARALLEL:  "parallel",
	KW_IN:        "in",
	KW_RETURN:    "return",
	KW_THROW:     "throw",
	KW_CATCH:     "catch",
	KW_I32:       "i32",
	KW_U32:       "u32",
	KW_I64:       "i64",
	KW_U64:       "u64",
	KW_F32:       "f32",
	KW_F64:       "f64",
	KW_BOOL:      "bool",
	KW_CHAR:      "char",
	KW_STR:       "str",
	KW_VOID:      "void",
	KW_I32X4:     "i32x4",
	KW_F32X4:     "f32x4",
	KW_F64X2:     "f64x2",
	KW_TRUE:      "true",
	KW_FALSE:     "false",
	KW_NONE:      "none",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Keywords maps every reserved lexeme (control-flow, definition and
// literal keywords — NOT primitive type names, which are resolved via
// the primitives table into TYPE tokens first) to its Kind, so the
// lexer's identifier classification is a single map lookup, mirroring
// the signature engine's table-driven recognition.
var Keywords = map[string]Kind{
	"use": KW_USE, "as": KW_AS, "def": KW_DEF, "data": KW_DATA,
	"func": KW_FUNC, "entity": KW_ENTITY, "enum": KW_ENUM, "error": KW_ERROR,
	"variant": KW_VARIANT, "test": KW_TEST, "link": KW_LINK,
	"requires": KW_REQUIRES, "extends": KW_EXTENDS, "extern": KW_EXTERN,
	"aligned": KW_ALIGNED, "const": KW_CONST, "mut": KW_MUT,
	"if": KW_IF, "else": KW_ELSE, "while": KW_WHILE, "for": KW_FOR,
	"parallel": KW_PARALLEL, "in": KW_IN, "return": KW_RETURN,
	"throw": KW_THROW, "catch": KW_CATCH,
	"true": KW_TRUE, "false": KW_FALSE, "none": KW_NONE,
}

// Primitives maps every primitive type keyword to its Kind, consulted
// before Keywords during identifier classification (spec.md §4.1:
// "look the identifier up in a primitives table... then a keyword
// table, else emit IDENTIFIER").
var Primitives = map[string]Kind{
	"i32": KW_I32, "u32": KW_U32, "i64": KW_I64, "u64": KW_U64,
	"f32": KW_F32, "f64": KW_F64, "bool": KW_BOOL, "char": KW_CHAR,
	"str": KW_STR, "void": KW_VOID,
	"i32x4": KW_I32X4, "f32x4": KW_F32X4, "f64x2": KW_F64X2,
}

// IsKeyword reports whether k is one of the reserved, non-primitive
// keywords.
func (k Kind) IsKeyword() bool {
	for _, v := range Keywords {
		if v == k {
			return true
		}
	}
	return false
}
