// Package corelib holds the fixed Core.* module table and the built-in
// function table the parser's call-resolution step consults (spec.md
// §4.3 "Calls"; GLOSSARY "Core module"). Both tables are closed sets
// fixed at compile time of this package, matching spec.md's "NAME ∈ fixed
// table" contract for `use Core.NAME`.
package corelib

import "github.com/standardbeagle/flintc/internal/typesys"

// Overload describes one callable signature within a core module or the
// built-in table.
type Overload struct {
	Name    string
	Params  []typesys.Primitive
	Variadic bool
	Returns typesys.Primitive
	HasReturn bool
}

// Modules is the fixed Core.* table (GLOSSARY: "Core module — a built-in
// module (e.g. Core.print, Core.env, Core.filesystem)").
var Modules = map[string][]Overload{
	"print": {
		{Name: "print", Params: []typesys.Primitive{typesys.Str}, Variadic: true},
	},
	"env": {
		{Name: "get", Params: []typesys.Primitive{typesys.Str}, Returns: typesys.Str, HasReturn: true},
		{Name: "set", Params: []typesys.Primitive{typesys.Str, typesys.Str}},
	},
	"filesystem": {
		{Name: "read", Params: []typesys.Primitive{typesys.Str}, Returns: typesys.Str, HasReturn: true},
		{Name: "write", Params: []typesys.Primitive{typesys.Str, typesys.Str}},
		{Name: "exists", Params: []typesys.Primitive{typesys.Str}, Returns: typesys.Bool, HasReturn: true},
	},
	"math": {
		{Name: "sqrt", Params: []typesys.Primitive{typesys.F64}, Returns: typesys.F64, HasReturn: true},
		{Name: "pow", Params: []typesys.Primitive{typesys.F64, typesys.F64}, Returns: typesys.F64, HasReturn: true},
		{Name: "abs", Params: []typesys.Primitive{typesys.F64}, Returns: typesys.F64, HasReturn: true},
	},
	"string": {
		{Name: "len", Params: []typesys.Primitive{typesys.Str}, Returns: typesys.I64, HasReturn: true},
		{Name: "concat", Params: []typesys.Primitive{typesys.Str, typesys.Str}, Returns: typesys.Str, HasReturn: true},
	},
}

// IsCoreModule reports whether name is a known Core.* module.
func IsCoreModule(name string) bool {
	_, ok := Modules[name]
	return ok
}

// Builtins is the built-in function table matched by name (print,
// assert, etc. — spec.md §4.3 "Calls": "built-in (print, assert, etc. —
// matches by name table)").
var Builtins = map[string]Overload{
	"print":  {Name: "print", Params: []typesys.Primitive{typesys.Str}, Variadic: true},
	"assert": {Name: "assert", Params: []typesys.Primitive{typesys.Bool}},
	"str":    {Name: "str", Params: nil, Variadic: true, Returns: typesys.Str, HasReturn: true},
}

// IsBuiltin reports whether name is a built-in function.
func IsBuiltin(name string) bool {
	_, ok := Builtins[name]
	return ok
}

// ReservedFunctionNames is the closed set of names that may not be used
// for a user-defined function (spec.md §4.3 "Functions": FnReservedName;
// §9 Open Question — "reserved" function names). `main` is deliberately
// excluded per spec.md's requirement that it never be reserved.
var ReservedFunctionNames = map[string]bool{
	"__flint_init":    true,
	"__flint_cleanup": true,
	"__fip_dispatch":  true,
}

// IsReservedFunctionName reports whether name may not be used for a
// user-defined function.
func IsReservedFunctionName(name string) bool {
	return ReservedFunctionNames[name]
}

// AllNames returns every built-in and core-module function name, used as
// the candidate pool for ExprCallOfUndefinedFunction "did you mean"
// suggestions (internal/diag.Suggest).
func AllNames() []string {
	var out []string
	for name := range Builtins {
		out = append(out, name)
	}
	for mod, overloads := range Modules {
		for _, o := range overloads {
			out = append(out, mod+"."+o.Name)
		}
	}
	return out
}
