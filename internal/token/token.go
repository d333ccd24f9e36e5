package token

import "github.com/cespare/xxhash/v2"

// Lexeme is a borrowed view into a source buffer: an (offset, length) pair
// plus a precomputed hash for fast identifier/keyword comparison. It is
// the non-TYPE payload half of PositionedToken's duality (spec.md §3
// invariant 2), modeled on the teacher's types.StringRef
// fast-hash-then-compare borrowed-string pattern.
type Lexeme struct {
	source []byte
	Offset uint32
	Length uint32
	Hash   uint64
}

// EmptyLexeme is the zero value; Length 0 marks it invalid/unused, the
// counterpart of Token payload invariant 2 (TYPE tokens leave it unused).
var EmptyLexeme = Lexeme{}

// NewLexeme builds a Lexeme view over source[start:start+length].
func NewLexeme(source []byte, start, length int) Lexeme {
	if start < 0 || length < 0 || start+length > len(source) {
		return Lexeme{}
	}
	return Lexeme{
		source: source,
		Offset: uint32(start),
		Length: uint32(length),
		Hash:   xxhash.Sum64(source[start : start+length]),
	}
}

func (l Lexeme) IsEmpty() bool { return l.Length == 0 }

// Text materializes the lexeme's string content. Allocates; prefer Equal
// for comparisons.
func (l Lexeme) Text() string {
	if l.source == nil {
		return ""
	}
	return string(l.source[l.Offset : l.Offset+l.Length])
}

// Equal compares two lexemes by hash first, falling back to byte
// comparison only on a hash match (mirrors types.StringRef.Equal).
func (l Lexeme) Equal(other Lexeme) bool {
	if l.Hash != other.Hash || l.Length != other.Length {
		return false
	}
	return l.Text() == other.Text()
}

// EqualString compares a lexeme against a plain string without requiring
// the caller to build another Lexeme.
func (l Lexeme) EqualString(s string) bool {
	if int(l.Length) != len(s) {
		return false
	}
	return l.Text() == s
}

// Position is a 1-based (line, column) pair. Columns reflect tab
// expansion (spec.md §3 invariant 1): each '\t' counts as TabSize columns.
type Position struct {
	Line   int
	Column int
}

// TypeRef is the payload TYPE tokens carry. It is declared here (rather
// than importing internal/typesys directly) as a narrow interface so the
// token package has no dependency on the type-system package; typesys.Type
// satisfies it.
type TypeRef interface {
	String() string
}

// PositionedToken is a Token plus its source position and payload.
// Exactly one of Lexeme/TypeValue is active, discriminated by Kind==TYPE
// (spec.md §3 invariant 2).
type PositionedToken struct {
	Kind      Kind
	Pos       Position
	Lexeme    Lexeme
	TypeValue TypeRef
}

func NewToken(kind Kind, pos Position, lex Lexeme) PositionedToken {
	return PositionedToken{Kind: kind, Pos: pos, Lexeme: lex}
}

func NewTypeToken(pos Position, t TypeRef) PositionedToken {
	return PositionedToken{Kind: TYPE, Pos: pos, TypeValue: t}
}

// Text returns the token's source text: the lexeme for ordinary tokens,
// or the interned type's rendered name for TYPE tokens.
func (t PositionedToken) Text() string {
	if t.Kind == TYPE {
		if t.TypeValue == nil {
			return ""
		}
		return t.TypeValue.String()
	}
	return t.Lexeme.Text()
}
