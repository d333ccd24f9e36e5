package typesys

import "sync"

// Table is the process-wide type intern table (spec.md §3: "two
// structurally equal primitive types share the same descriptor";
// §5 "Type intern table: written under its own lock; ... must lock on
// every access"). A CompilerContext owns exactly one Table.
type Table struct {
	mu   sync.Mutex
	byID map[string]*Type
}

func NewTable() *Table {
	t := &Table{byID: make(map[string]*Type)}
	// Primitives are singletons from construction, matching spec.md §3
	// ("primitive types are singletons").
	for p := I32; p <= F64x2; p++ {
		t.intern(&Type{kind: KPrimitive, prim: p, structKey: structuralKey(KPrimitive, p, nil, nil, nil, "")})
	}
	return t
}

func (t *Table) intern(candidate *Type) *Type {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.byID[candidate.structKey]; ok {
		return existing
	}
	t.byID[candidate.structKey] = candidate
	return candidate
}

func (t *Table) Primitive(p Primitive) *Type {
	key := structuralKey(KPrimitive, p, nil, nil, nil, "")
	t.mu.Lock()
	existing := t.byID[key]
	t.mu.Unlock()
	if existing != nil {
		return existing
	}
	return t.intern(&Type{kind: KPrimitive, prim: p, structKey: key})
}

func (t *Table) Array(elem *Type) *Type {
	key := structuralKey(KArray, 0, elem, nil, nil, "")
	return t.internKeyed(key, &Type{kind: KArray, elem: elem, structKey: key})
}

func (t *Table) Optional(elem *Type) *Type {
	key := structuralKey(KOptional, 0, elem, nil, nil, "")
	return t.internKeyed(key, &Type{kind: KOptional, elem: elem, structKey: key})
}

func (t *Table) Tuple(members []*Type) *Type {
	key := structuralKey(KTuple, 0, nil, members, nil, "")
	return t.internKeyed(key, &Type{kind: KTuple, members: members, structKey: key})
}

func (t *Table) Data(name string) *Type {
	key := structuralKey(KData, 0, nil, nil, nil, name)
	return t.internKeyed(key, &Type{kind: KData, name: name, structKey: key})
}

func (t *Table) Variant(name string) *Type {
	key := structuralKey(KVariant, 0, nil, nil, nil, name)
	return t.internKeyed(key, &Type{kind: KVariant, name: name, structKey: key})
}

func (t *Table) ErrorSet(name string) *Type {
	key := structuralKey(KErrorSet, 0, nil, nil, nil, name)
	return t.internKeyed(key, &Type{kind: KErrorSet, name: name, structKey: key})
}

func (t *Table) FuncPointer(params []*Type, ret *Type) *Type {
	key := structuralKey(KFuncPointer, 0, nil, params, ret, "")
	return t.internKeyed(key, &Type{kind: KFuncPointer, members: params, ret: ret, structKey: key})
}

func (t *Table) internKeyed(key string, candidate *Type) *Type {
	t.mu.Lock()
	defer t.mu.Unlock()
	if existing, ok := t.byID[key]; ok {
		return existing
	}
	t.byID[key] = candidate
	return candidate
}
