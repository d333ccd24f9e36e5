package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/flintc/internal/ast"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/fip"
	"github.com/standardbeagle/flintc/internal/source"
	"github.com/standardbeagle/flintc/internal/typesys"
)

func hasDiag(diags []*diag.Diagnostic, kind diag.Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func writeFIPModule(t *testing.T, dir, tag string, functions ...string) {
	t.Helper()
	configDir := filepath.Join(dir, fip.DirName, "config")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := "functions"
	for _, fn := range functions {
		content += ` "` + fn + `"`
	}
	content += "\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, tag+".kdl"), []byte(content), 0o644))
}

func TestParseExternDef_WithoutFIPDirectory(t *testing.T) {
	src := `extern "math" def sqrt(f64 x) -> f64;` + "\n"
	node, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, fip.Empty)

	require.Len(t, node.Definitions, 1)
	ext, ok := node.Definitions[0].(*ast.ExternDef)
	require.True(t, ok)
	assert.Equal(t, "sqrt", ext.Name)
	assert.Equal(t, "math", ext.Module)

	assert.True(t, hasDiag(diags, diag.KindExternWithoutFIP))
}

func TestParseExternDef_FoundInSingleModule(t *testing.T) {
	dir := t.TempDir()
	writeFIPModule(t, dir, "math", "sqrt")
	idx, err := fip.Load(dir)
	require.NoError(t, err)
	require.True(t, idx.Present())

	src := `extern "math" def sqrt(f64 x) -> f64;` + "\n"
	_, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, idx)

	assert.False(t, hasDiag(diags, diag.KindExternWithoutFIP))
	assert.False(t, hasDiag(diags, diag.KindExternNotFound))
	assert.False(t, hasDiag(diags, diag.KindFIPAmbiguousModuleTag))
}

func TestParseExternDef_AmbiguousModuleTag(t *testing.T) {
	dir := t.TempDir()
	writeFIPModule(t, dir, "mathA", "sqrt")
	writeFIPModule(t, dir, "mathB", "sqrt")
	idx, err := fip.Load(dir)
	require.NoError(t, err)

	src := `extern "mathA" def sqrt(f64 x) -> f64;` + "\n"
	_, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, idx)

	assert.True(t, hasDiag(diags, diag.KindFIPAmbiguousModuleTag))
}

func TestParseExternDef_NotFound(t *testing.T) {
	dir := t.TempDir()
	writeFIPModule(t, dir, "math", "sqrt")
	idx, err := fip.Load(dir)
	require.NoError(t, err)

	src := `extern "math" def cos(f64 x) -> f64;` + "\n"
	_, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, idx)

	assert.True(t, hasDiag(diags, diag.KindExternNotFound))
}

func TestParseExternDef_DuplicateFunction(t *testing.T) {
	src := "extern \"math\" def sqrt(f64 x) -> f64;\nextern \"math\" def sqrt(f64 y) -> f64;\n"
	node, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, fip.Empty)

	require.Len(t, node.Definitions, 2)
	assert.True(t, hasDiag(diags, diag.KindExternDuplicateFunction))
}

func TestParseTypeRef_FuncPointerSyntax(t *testing.T) {
	src := `extern "cb" def register(func(i32) -> i32 f) -> void;` + "\n"
	node, _ := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, fip.Empty)

	require.Len(t, node.Definitions, 1)
	ext, ok := node.Definitions[0].(*ast.ExternDef)
	require.True(t, ok)
	require.Len(t, ext.Params, 1)

	pt := ext.Params[0].Type
	require.Equal(t, typesys.KFuncPointer, pt.Kind())
	require.Len(t, pt.Members(), 1)
	assert.Equal(t, typesys.I32, pt.Members()[0].Primitive())
	assert.Equal(t, typesys.I32, pt.Return().Primitive())
}

func TestAnalyzePointerUsage_RejectsFuncPointerInNonExternFunction(t *testing.T) {
	src := "def apply(func(i32) -> i32 g):\n\tg(1);\n"
	_, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, fip.Empty)

	assert.True(t, hasDiag(diags, diag.KindPointerTypeNotAllowedInNonExternContext))
}

func TestAnalyzePointerUsage_RejectsFuncPointerInVariant(t *testing.T) {
	src := "variant Callback:\n\tfunc(i32) -> i32 onEvent;\n"
	_, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, fip.Empty)

	assert.True(t, hasDiag(diags, diag.KindPointerTypeNotAllowedInVariant))
}

func TestAnalyzePointerUsage_AllowsFuncPointerInExternSignature(t *testing.T) {
	src := `extern "cb" def register(func(i32) -> i32 f) -> void;` + "\n"
	_, diags := ParseFile([]byte(src), source.Empty, typesys.NewTable(), false, fip.Empty)

	assert.False(t, hasDiag(diags, diag.KindPointerTypeNotAllowedInNonExternContext))
}
