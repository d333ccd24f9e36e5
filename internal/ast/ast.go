// Package ast defines Flint's AST sum types: Definition, Statement and
// Expression (spec.md §3 "AST nodes"). Each is modeled as a Go interface
// implemented by one struct per variant, with a Kind() discriminant for
// switch dispatch — the same "closed sum type, no vtables" shape the
// diagnostics engine uses (spec.md §9), applied to syntax instead of
// errors.
package ast

import (
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// Pos carries the file/position/length every AST node needs for
// diagnostics (spec.md §3: "Each carries file-hash + position + length").
type Pos struct {
	File   source.FileHash
	Line   int
	Column int
	Length int
}

// DefinitionKind discriminates the Definition sum type.
type DefinitionKind uint8

const (
	DefImport DefinitionKind = iota
	DefFunction
	DefData
	DefFunc
	DefEntity
	DefEnum
	DefError
	DefVariant
	DefLink
	DefTest
	DefExtern
)

// Definition is any top-level named construct (spec.md GLOSSARY).
type Definition interface {
	DefinitionKind() DefinitionKind
	Position() Pos
}

// StatementKind discriminates the Statement sum type.
type StatementKind uint8

const (
	StmtDeclaration StatementKind = iota
	StmtAssignment
	StmtIf
	StmtWhile
	StmtFor
	StmtEnhancedFor
	StmtReturn
	StmtThrow
	StmtCatch
	StmtExpression
)

// Statement is any body statement (spec.md §3 "Statement"). Every
// Statement knows the id of the scope it was parsed into.
type Statement interface {
	StatementKind() StatementKind
	Position() Pos
	ScopeID() int
}

// ExpressionKind discriminates the Expression sum type.
type ExpressionKind uint8

const (
	ExprVariable ExpressionKind = iota
	ExprLiteral
	ExprUnaryOp
	ExprBinaryOp
	ExprCall
	ExprTypeCast
	ExprGroup
)

// Expression is any value-producing AST node (spec.md §3 "Expression").
// Every Expression knows its resolved Type.
type Expression interface {
	ExpressionKind() ExpressionKind
	Position() Pos
	Type() *typesys.Type
}
