package scope

// Arena owns every Scope created while parsing a single function body
// (spec.md §9: "Store scopes in a per-function arena indexed by scope
// id"). Scope ids are per-function monotone integers; id 0 (GlobalID) is
// always the arena's root scope.
type Arena struct {
	scopes []*Scope
	next   int
}

// NewArena creates an arena with its root scope, which has no parent,
// already allocated at id GlobalID.
func NewArena() *Arena {
	a := &Arena{}
	a.Push(-1) // root: no parent
	return a
}

// Push allocates a new scope with the given parent id and returns its id.
func (a *Arena) Push(parent int) int {
	id := a.next
	a.next++
	a.scopes = append(a.scopes, newScope(id, parent))
	return id
}

// Get returns the scope with the given id.
func (a *Arena) Get(id int) *Scope {
	return a.scopes[id]
}

// Declare inserts a variable into the scope identified by scopeID.
func (a *Arena) Declare(scopeID int, v Variable) bool {
	return a.Get(scopeID).Declare(v)
}

// Resolve walks scopeID's parent chain looking for name, returning the
// variable and the id of the scope that declared it (spec.md §3
// invariant 4, §8 property 5). ok is false if no ancestor declares name.
func (a *Arena) Resolve(scopeID int, name string) (*Variable, int, bool) {
	for id := scopeID; id >= 0; id = a.Get(id).Parent {
		if v, ok := a.Get(id).Lookup(name); ok {
			return v, id, true
		}
	}
	return nil, 0, false
}

// DeclaredInScope reports whether name is declared directly in scopeID
// (not an ancestor) — used by VarRedefinition checks.
func (a *Arena) DeclaredInScope(scopeID int, name string) bool {
	_, ok := a.Get(scopeID).Lookup(name)
	return ok
}

// VisibleNames returns every variable name visible from scopeID, walking
// the full parent chain — the candidate pool for VarNotDeclared's "did
// you mean" suggestions.
func (a *Arena) VisibleNames(scopeID int) []string {
	var names []string
	for id := scopeID; id >= 0; id = a.Get(id).Parent {
		names = append(names, a.Get(id).Names()...)
	}
	return names
}
