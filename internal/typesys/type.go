// Package typesys implements Flint's Type model: primitive, array, tuple,
// optional, data-module reference, variant, error-set and function-pointer
// types, shared as immutable *Type handles with a
// process-wide intern table for structural identity (spec.md §3 "Type",
// §9 "Shared ownership of types"). Grounded on the teacher's reference-
// counted, hash-keyed shared-value pattern (internal/types.StringRef,
// internal/idcodec's structural hashing).
package typesys

import "github.com/cespare/xxhash/v2"

// Primitive enumerates Flint's scalar kinds plus SIMD widths.
type Primitive uint8

const (
	I32 Primitive = iota
	U32
	I64
	U64
	F32
	F64
	Bool
	Char
	Str
	Void
	I32x4
	F32x4
	F64x2
)

var primitiveNames = [...]string{
	"i32", "u32", "i64", "u64", "f32", "f64", "bool", "char", "str", "void",
	"i32x4", "f32x4", "f64x2",
}

func (p Primitive) String() string { return primitiveNames[p] }

// Kind discriminates the Type sum type.
type Kind uint8

const (
	KPrimitive Kind = iota
	KArray
	KTuple
	KOptional
	KData
	KVariant
	KErrorSet
	KFuncPointer
)

// Type is an immutable, shared (interned) type descriptor. Capability
// set per spec.md §3: render-to-string (String), structural-equality
// (Equal), is-primitive (IsPrimitive).
type Type struct {
	kind      Kind
	prim      Primitive
	elem      *Type   // Array element / Optional inner
	members   []*Type // Tuple elements / FuncPointer params
	ret       *Type   // FuncPointer return
	name      string  // Data/Variant/ErrorSet name
	structKey string  // memoized structural key, computed once at construction
}

func (t *Type) Kind() Kind            { return t.kind }
func (t *Type) IsPrimitive() bool     { return t.kind == KPrimitive }
func (t *Type) Primitive() Primitive  { return t.prim }
func (t *Type) Elem() *Type           { return t.elem }
func (t *Type) Members() []*Type      { return t.members }
func (t *Type) Return() *Type         { return t.ret }
func (t *Type) Name() string          { return t.name }

// String renders the type the way Flint source would spell it.
func (t *Type) String() string {
	switch t.kind {
	case KPrimitive:
		return t.prim.String()
	case KArray:
		return t.elem.String() + "[]"
	case KTuple:
		s := "("
		for i, m := range t.members {
			if i > 0 {
				s += ", "
			}
			s += m.String()
		}
		return s + ")"
	case KOptional:
		return t.elem.String() + "?"
	case KData, KVariant, KErrorSet:
		return t.name
	case KFuncPointer:
		s := "func("
		for i, m := range t.members {
			if i > 0 {
				s += ", "
			}
			s += m.String()
		}
		s += ") -> "
		if t.ret != nil {
			s += t.ret.String()
		} else {
			s += "void"
		}
		return s
	default:
		return "<unknown type>"
	}
}

// Equal is structural equality: two types are equal iff their structural
// keys match. Interned primitive types also satisfy pointer equality.
func (t *Type) Equal(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.structKey == other.structKey
}

func structuralKey(kind Kind, prim Primitive, elem *Type, members []*Type, ret *Type, name string) string {
	switch kind {
	case KPrimitive:
		return "p:" + prim.String()
	case KArray:
		return "a:" + elem.structKey
	case KOptional:
		return "o:" + elem.structKey
	case KTuple:
		s := "t:("
		for _, m := range members {
			s += m.structKey + ","
		}
		return s + ")"
	case KData:
		return "d:" + name
	case KVariant:
		return "v:" + name
	case KErrorSet:
		return "e:" + name
	case KFuncPointer:
		s := "f:("
		for _, m := range members {
			s += m.structKey + ","
		}
		s += ")->"
		if ret != nil {
			s += ret.structKey
		}
		return s
	default:
		return ""
	}
}

// Hash64 is a convenience hash of the structural key, for callers that
// prefer a uint64 map key to the string key.
func (t *Type) Hash64() uint64 {
	return xxhash.Sum64String(t.structKey)
}
