package ast

import "github.com/standardbeagle/flintc/internal/typesys"

// DeclarationStmt is `TYPE NAME = EXPR;` (explicit) or `NAME := EXPR;`
// (inferred) — spec.md §4.3 "Declarations".
type DeclarationStmt struct {
	Pos      Pos
	Scope    int
	Name     string
	Type     *typesys.Type // the declared or inferred type
	Value    Expression
	Inferred bool
	Mutable  bool
}

func (s *DeclarationStmt) StatementKind() StatementKind { return StmtDeclaration }
func (s *DeclarationStmt) Position() Pos                { return s.Pos }
func (s *DeclarationStmt) ScopeID() int                 { return s.Scope }

// AssignmentStmt is `NAME = EXPR;` (spec.md §4.3 "Assignments").
type AssignmentStmt struct {
	Pos   Pos
	Scope int
	Name  string
	Value Expression
}

func (s *AssignmentStmt) StatementKind() StatementKind { return StmtAssignment }
func (s *AssignmentStmt) Position() Pos                { return s.Pos }
func (s *AssignmentStmt) ScopeID() int                 { return s.Scope }

// IfArm is one condition+body pair of an If chain; Condition is nil for
// the trailing `else` arm.
type IfArm struct {
	Condition Expression
	Body      []Statement
}

// IfStmt is a chain of if / else-if / else arms, accumulated by the
// parser into a single node (spec.md §4.3 "Control flow").
type IfStmt struct {
	Pos   Pos
	Scope int
	Arms  []IfArm
}

func (s *IfStmt) StatementKind() StatementKind { return StmtIf }
func (s *IfStmt) Position() Pos                { return s.Pos }
func (s *IfStmt) ScopeID() int                 { return s.Scope }

// WhileStmt is `while COND: BODY`.
type WhileStmt struct {
	Pos       Pos
	Scope     int
	Condition Expression
	Body      []Statement
}

func (s *WhileStmt) StatementKind() StatementKind { return StmtWhile }
func (s *WhileStmt) Position() Pos                { return s.Pos }
func (s *WhileStmt) ScopeID() int                 { return s.Scope }

// ForStmt is the C-style `for CODE; COND; STEP: BODY`.
type ForStmt struct {
	Pos       Pos
	Scope     int
	Init      Statement
	Condition Expression
	Step      Statement
	Body      []Statement
}

func (s *ForStmt) StatementKind() StatementKind { return StmtFor }
func (s *ForStmt) Position() Pos                { return s.Pos }
func (s *ForStmt) ScopeID() int                 { return s.Scope }

// EnhancedForStmt is `for NAME, NAME in EXPR: BODY` (also covers `parallel
// ... in EXPR:` via the Parallel flag, spec.md §4.3).
type EnhancedForStmt struct {
	Pos       Pos
	Scope     int
	IndexVar  string // empty if only one binding was given
	ValueVar  string
	Iterable  Expression
	Body      []Statement
	Parallel  bool
}

func (s *EnhancedForStmt) StatementKind() StatementKind { return StmtEnhancedFor }
func (s *EnhancedForStmt) Position() Pos                { return s.Pos }
func (s *EnhancedForStmt) ScopeID() int                 { return s.Scope }

// ReturnStmt is `return [EXPR, ...];`.
type ReturnStmt struct {
	Pos    Pos
	Scope  int
	Values []Expression
}

func (s *ReturnStmt) StatementKind() StatementKind { return StmtReturn }
func (s *ReturnStmt) Position() Pos                { return s.Pos }
func (s *ReturnStmt) ScopeID() int                 { return s.Scope }

// ThrowStmt is `throw EXPR;`.
type ThrowStmt struct {
	Pos   Pos
	Scope int
	Value Expression
}

func (s *ThrowStmt) StatementKind() StatementKind { return StmtThrow }
func (s *ThrowStmt) Position() Pos                { return s.Pos }
func (s *ThrowStmt) ScopeID() int                 { return s.Scope }

// CatchStmt is the `catch: BODY` clause following a call that can throw.
type CatchStmt struct {
	Pos   Pos
	Scope int
	Body  []Statement
}

func (s *CatchStmt) StatementKind() StatementKind { return StmtCatch }
func (s *CatchStmt) Position() Pos                { return s.Pos }
func (s *CatchStmt) ScopeID() int                 { return s.Scope }

// ExpressionStmt wraps a bare expression used as a statement (typically a
// call, e.g. `print("hi");`).
type ExpressionStmt struct {
	Pos   Pos
	Scope int
	Value Expression
}

func (s *ExpressionStmt) StatementKind() StatementKind { return StmtExpression }
func (s *ExpressionStmt) Position() Pos                { return s.Pos }
func (s *ExpressionStmt) ScopeID() int                 { return s.Scope }
