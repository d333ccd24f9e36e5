// Package scope implements Flint's lexical scope tree (spec.md §3
// "Scope", §9 "Scope trees with back-pointers"): scopes live in a
// per-function arena indexed by scope id, with a non-owning parent
// pointer, avoiding cyclic ownership.
package scope

import (
	"strconv"

	"github.com/standardbeagle/flintc/internal/typesys"
)

// GlobalID is the reserved scope id for file-top-level (spec.md §3).
const GlobalID = 0

// Variable is one entry of a scope's variable table.
type Variable struct {
	Name        string
	Type        *typesys.Type
	DeclScope   int
	Mutable     bool
	Mutated     bool // set once an Assignment targets this variable
	FromRequires bool // true if introduced by an enclosing func module's requires list
}

// Scope is one lexical scope: an insertion-ordered variable table and a
// parent pointer (by id, non-owning).
type Scope struct {
	ID       int
	Parent   int // -1 for the root scope of an arena
	order    []string
	vars     map[string]*Variable
}

func newScope(id, parent int) *Scope {
	return &Scope{ID: id, Parent: parent, vars: make(map[string]*Variable)}
}

// Declare inserts a new variable into s. Returns false if name is already
// declared in this exact scope (spec.md §4.3: VarRedefinition).
func (s *Scope) Declare(v Variable) bool {
	if _, exists := s.vars[v.Name]; exists {
		return false
	}
	s.vars[v.Name] = &v
	s.order = append(s.order, v.Name)
	return true
}

// Lookup returns the variable named name declared directly in s (not
// ancestors).
func (s *Scope) Lookup(name string) (*Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Names returns the variables declared directly in s, in declaration
// order — used to build "did you mean" candidate pools for VarNotDeclared.
func (s *Scope) Names() []string {
	return append([]string(nil), s.order...)
}

// Key is the "s<decl_scope_id>::<name>" lookup key spec.md §3 mandates
// for a variable, used by callers that need a globally-unique identity
// across an Arena rather than a (Scope, name) pair.
func Key(declScopeID int, name string) string {
	return "s" + strconv.Itoa(declScopeID) + "::" + name
}
