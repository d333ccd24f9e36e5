package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/typesys"
)

// TestParse_HelloWorld covers spec.md §8 scenario 1: a single main
// function whose body is one call to the built-in print.
func TestParse_HelloWorld(t *testing.T) {
	src := "def main() :\n\tprint(\"Hello, World!\\n\");\n"
	node, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)
	require.Len(t, node.Definitions, 1)

	fn, ok := node.Definitions[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name)
	assert.True(t, fn.IsMainFunc)
	assert.Empty(t, fn.Params)
	assert.Empty(t, fn.Returns)
	require.Len(t, fn.Body, 1)

	exprStmt, ok := fn.Body[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	call, ok := exprStmt.Value.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "print", call.Name)
	assert.Equal(t, ast.CallBuiltin, call.Target)
	require.Len(t, call.Args, 1)
	lit, ok := call.Args[0].(*ast.LiteralExpr)
	require.True(t, ok)
	assert.Equal(t, "Hello, World!\n", lit.StrVal)
}

// TestParse_TypeMismatchedAddition covers spec.md §8 scenario 2.
func TestParse_TypeMismatchedAddition(t *testing.T) {
	src := "def main() :\n\tx := 1 + 2.0;\n"
	_, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)

	found := false
	for _, d := range diags {
		if d.Kind == diag.KindExprBinopTypeMismatch {
			found = true
		}
	}
	assert.True(t, found, "expected an ExprBinopTypeMismatch diagnostic")
}

// TestParse_MainWithExtraArgs covers spec.md §8 scenario 4 (substituting
// this module's i32 primitive for the scenario's generic "int").
func TestParse_MainWithExtraArgs(t *testing.T) {
	src := "def main(i32 x, i32 y) :\n\treturn;\n"
	_, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)

	found := false
	for _, d := range diags {
		if d.Kind == diag.KindFnMainTooManyArgs {
			found = true
		}
	}
	assert.True(t, found, "expected an FnMainTooManyArgs diagnostic")
}

// TestParse_DanglingElse covers spec.md §8 scenario 6.
func TestParse_DanglingElse(t *testing.T) {
	src := "def main() :\n\telse:\n\t\treturn;\n"
	_, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)

	found := false
	for _, d := range diags {
		if d.Kind == diag.KindStmtDanglingElse {
			found = true
		}
	}
	assert.True(t, found, "expected a StmtDanglingElse diagnostic")
}

func TestParse_IfElseChainAccumulates(t *testing.T) {
	src := "def main() :\n\ti32 x = 1;\n\tif x == 1:\n\t\treturn;\n\telse:\n\t\treturn;\n"
	node, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)

	fn := node.Definitions[0].(*ast.FunctionDef)
	require.Len(t, fn.Body, 2) // declaration, if-chain
	ifStmt, ok := fn.Body[1].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifStmt.Arms, 2)
	assert.NotNil(t, ifStmt.Arms[0].Condition)
	assert.Nil(t, ifStmt.Arms[1].Condition)
}

func TestParse_ImportDedup(t *testing.T) {
	src := "use \"b.flint\";\nuse \"b.flint\";\ndef main() :\n\treturn;\n"
	_, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)

	found := false
	for _, d := range diags {
		if d.Kind == diag.KindImportSameFileTwice {
			found = true
		}
	}
	assert.True(t, found, "expected an ImportSameFileTwice diagnostic")
}

func TestParse_DataDefFields(t *testing.T) {
	src := "data Point:\n\ti32 x;\n\ti32 y;\n"
	node, diags := Parse([]byte(src), source.Empty, typesys.NewTable(), false)
	require.Empty(t, diags)

	dd, ok := node.ByName["Point"].(*ast.DataDef)
	require.True(t, ok)
	require.Len(t, dd.Fields, 2)
	assert.Equal(t, "x", dd.Fields[0].Name)
	assert.Equal(t, "y", dd.Fields[1].Name)
}
