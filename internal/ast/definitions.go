package ast

import (
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// ImportDef is a `use ...` definition (spec.md §4.3 "Imports").
type ImportDef struct {
	Pos          Pos
	Path         string       // quoted-string form, resolved relative to the importing file
	DottedName   string       // Core.NAME or a.b.c form
	IsCoreModule bool
	Alias        string // non-empty for `use "x" as ALIAS`
	Target       source.FileHash
}

func (d *ImportDef) DefinitionKind() DefinitionKind { return DefImport }
func (d *ImportDef) Position() Pos                  { return d.Pos }

// Param is a function/func-module/entity-constructor parameter.
type Param struct {
	Name    string
	Type    *typesys.Type
	Mutable bool
}

// FunctionDef is a top-level `def` function (spec.md §4.3 "Functions").
type FunctionDef struct {
	Pos        Pos
	Name       string
	Aligned    bool
	Const      bool
	Params     []Param
	Returns    []*typesys.Type // len>1 means the function returns a tuple-in-parens
	ErrorSet   string          // non-empty if the function declares `throw ErrorSetName`
	Body       []Statement
	ScopeID    int
	IsMainFunc bool
}

func (d *FunctionDef) DefinitionKind() DefinitionKind { return DefFunction }
func (d *FunctionDef) Position() Pos                  { return d.Pos }

// DataField is one field of a DataDef.
type DataField struct {
	Name    string
	Type    *typesys.Type
	Default Expression // nil if no default
}

// DataDef is a `data` module: fields plus a generated constructor
// (spec.md GLOSSARY "Data module").
type DataDef struct {
	Pos    Pos
	Name   string
	Fields []DataField
}

func (d *DataDef) DefinitionKind() DefinitionKind { return DefData }
func (d *DataDef) Position() Pos                  { return d.Pos }

// FuncDef is a `func` module: functions sharing a required set of data
// modules, injected as parameters at every call site (spec.md GLOSSARY
// "Func module").
type FuncDef struct {
	Pos       Pos
	Name      string
	Requires  []string // required data module names
	Functions []*FunctionDef
}

func (d *FuncDef) DefinitionKind() DefinitionKind { return DefFunc }
func (d *FuncDef) Position() Pos                  { return d.Pos }

// LinkMapping is one `a::b -> c::d` entry of an entity's link section.
type LinkMapping struct {
	FromData string
	FromName string
	ToData   string
	ToName   string
}

// EntityDef is a composition of data and func modules (spec.md GLOSSARY
// "Entity"). Modular form references DataNames/FuncNames by name;
// monolithic form inlines them as synthetic Inline* definitions named
// "<Name>__D" / "<Name>__F" (spec.md §4.3).
type EntityDef struct {
	Pos             Pos
	Name            string
	Modular         bool
	DataNames       []string
	FuncNames       []string
	Links           []LinkMapping
	InlineData      *DataDef
	InlineFunc      *FuncDef
	ConstructorName string
}

func (d *EntityDef) DefinitionKind() DefinitionKind { return DefEntity }
func (d *EntityDef) Position() Pos                  { return d.Pos }

// EnumDef is a closed set of named integer-backed values.
type EnumDef struct {
	Pos    Pos
	Name   string
	Values []string
}

func (d *EnumDef) DefinitionKind() DefinitionKind { return DefEnum }
func (d *EnumDef) Position() Pos                  { return d.Pos }

// ErrorDef is a finite set of error tags, optionally extending one parent
// (spec.md GLOSSARY "Error set"; §7 SUPPLEMENTED FEATURES: single-parent
// rule).
type ErrorDef struct {
	Pos    Pos
	Name   string
	Parent string // empty if no `extends` clause
	Tags   []string
}

func (d *ErrorDef) DefinitionKind() DefinitionKind { return DefError }
func (d *ErrorDef) Position() Pos                  { return d.Pos }

// VariantMember is one named alternative of a VariantDef.
type VariantMember struct {
	Name string
	Type *typesys.Type
}

// VariantDef is a closed tagged union of named types (spec.md GLOSSARY
// "Variant").
type VariantDef struct {
	Pos     Pos
	Name    string
	Members []VariantMember
}

func (d *VariantDef) DefinitionKind() DefinitionKind { return DefVariant }
func (d *VariantDef) Position() Pos                  { return d.Pos }

// LinkDef is a standalone top-level `link:` definition (entities may also
// carry an inline link section; this variant covers a link block declared
// outside any entity, when the grammar allows it).
type LinkDef struct {
	Pos      Pos
	Mappings []LinkMapping
}

func (d *LinkDef) DefinitionKind() DefinitionKind { return DefLink }
func (d *LinkDef) Position() Pos                  { return d.Pos }

// TestDef is a `test` definition: a named, parameterless function body
// executed by the test runner the backend provides.
type TestDef struct {
	Pos  Pos
	Name string
	Body []Statement
}

func (d *TestDef) DefinitionKind() DefinitionKind { return DefTest }
func (d *TestDef) Position() Pos                  { return d.Pos }

// ExternDef is an `extern "<module>" def NAME(...) -> TYPE;` foreign
// interop declaration (SPEC_FULL.md §4.3, recovered from
// original_source/'s FIP error family): a function body-less header bound
// to a tagged foreign module the project's `.fip` directory must resolve.
type ExternDef struct {
	Pos     Pos
	Module  string
	Name    string
	Params  []Param
	Returns []*typesys.Type
}

func (d *ExternDef) DefinitionKind() DefinitionKind { return DefExtern }
func (d *ExternDef) Position() Pos                  { return d.Pos }
