package signature

import (
	"strconv"

	"github.com/standardbeagle/flintc/internal/token"
)

// Prebuilt signatures (spec.md §4.2): primitive types, named type,
// reference, function-call pattern, use-statement, definition headers,
// control-flow headers, declaration/assignment forms, and operator
// groups. Declared as package-level Signature values so the parser
// compiles each exactly once (via Signature.Compile's cache) regardless
// of how many files are parsed.
var (
	PrimitiveType = Signature{T(token.TYPE)}

	NamedType = Signature{T(token.IDENTIFIER)}

	// Reference matches a::b::c chains.
	Reference = Signature{
		T(token.IDENTIFIER),
		R("(?:#" + strconv.Itoa(int(token.DOUBLE_COLON)) + "##" + strconv.Itoa(int(token.IDENTIFIER)) + "#)*"),
	}

	FunctionCall = Signature{T(token.IDENTIFIER), T(token.LPAREN)}

	UseStatement = Signature{T(token.KW_USE)}

	DefFunction = Signature{T(token.KW_DEF)}
	DefData     = Signature{T(token.KW_DATA)}
	DefFunc     = Signature{T(token.KW_FUNC)}
	DefEntity   = Signature{T(token.KW_ENTITY)}
	DefEnum     = Signature{T(token.KW_ENUM)}
	DefError    = Signature{T(token.KW_ERROR)}
	DefVariant  = Signature{T(token.KW_VARIANT)}
	DefTest     = Signature{T(token.KW_TEST)}

	IfHeader     = Signature{T(token.KW_IF)}
	ElseIfHeader = Signature{T(token.KW_ELSE), T(token.KW_IF)}
	ElseHeader   = Signature{T(token.KW_ELSE)}
	WhileHeader  = Signature{T(token.KW_WHILE)}
	ForHeader    = Signature{T(token.KW_FOR)}
	// EnhancedForHeader matches `for NAME, NAME in EXPR:` headers, i.e. a
	// `for` whose parameter list contains `in` rather than `;`.
	EnhancedForHeader = Signature{T(token.KW_FOR), R(".*?"), T(token.KW_IN)}
	ParallelForHeader = Signature{T(token.KW_PARALLEL)}

	ReturnStatement = Signature{T(token.KW_RETURN)}
	ThrowStatement  = Signature{T(token.KW_THROW)}
	CatchStatement  = Signature{T(token.KW_CATCH)}

	DeclarationExplicit = Signature{T(token.TYPE), T(token.IDENTIFIER), T(token.ASSIGN)}
	DeclarationInferred = Signature{T(token.IDENTIFIER), T(token.COLON_ASSIGN)}
	Assignment          = Signature{T(token.IDENTIFIER), T(token.ASSIGN)}

	StatementTerminator = Signature{R("(?:#" + strconv.Itoa(int(token.SEMICOLON)) + "#|#" + strconv.Itoa(int(token.COLON)) + "#)")}

	BinaryOperators = []token.Kind{
		token.OR_OR, token.AND_AND,
		token.EQ, token.NEQ, token.LT, token.LTE, token.GT, token.GTE,
		token.PLUS, token.MINUS,
		token.STAR, token.SLASH, token.PERCENT,
		token.CARET,
	}
	UnaryOperators = []token.Kind{token.BANG, token.MINUS, token.INCREMENT, token.DECREMENT}

	BalanceParens = struct{ Inc, Dec Signature }{
		Inc: Signature{T(token.LPAREN)},
		Dec: Signature{T(token.RPAREN)},
	}
	BalanceBrackets = struct{ Inc, Dec Signature }{
		Inc: Signature{T(token.LBRACKET)},
		Dec: Signature{T(token.RBRACKET)},
	}
)
