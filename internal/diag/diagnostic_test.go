package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/flintc/internal/source"
)

func TestEmit_PopulatesCallSiteOnlyInDebugMode(t *testing.T) {
	quiet := Emit(Diagnostic{Kind: KindUnterminatedString}, false)
	assert.Empty(t, quiet.CallSite)

	traced := Emit(Diagnostic{Kind: KindUnterminatedString}, true)
	assert.NotEmpty(t, traced.CallSite)
	assert.Contains(t, traced.CallSite, "diagnostic_test.go")
}

func TestMessage_DispatchesOnKind(t *testing.T) {
	cases := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "invalid identifier names the reserved prefix",
			d:    Diagnostic{Kind: KindInvalidIdentifier, Name: "__flint_x"},
			want: `invalid identifier "__flint_x": reserved prefix`,
		},
		{
			name: "call of undefined function with no suggestions",
			d:    Diagnostic{Kind: KindExprCallOfUndefinedFunction, Name: "fo"},
			want: `call to undefined function "fo"`,
		},
		{
			name: "call of undefined function with suggestions",
			d:    Diagnostic{Kind: KindExprCallOfUndefinedFunction, Name: "fo", Suggestions: []string{"foo"}},
			want: `did you mean`,
		},
		{
			name: "fn main wrong arg type",
			d:    Diagnostic{Kind: KindFnMainWrongArgType, Expected: "str[]", Got: "i32"},
			want: "only argument must be 'str[] args'",
		},
		{
			name: "unknown kind falls back",
			d:    Diagnostic{Kind: Kind(99999)},
			want: "unknown diagnostic",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, tc.d.Message(), tc.want)
		})
	}
}

func TestRenderTerminal_IncludesGutterAndUnderline(t *testing.T) {
	table := source.BuildLineTable([]byte("def main() :\n\tlet x = 1 + true;\n"), 4)
	d := &Diagnostic{
		Kind: KindExprBinopTypeMismatch, Stage: StageParsing,
		File: source.New("main.flint"), Line: 2, Column: 10, Length: 8,
		Expected: "i32", Got: "bool",
	}

	out := RenderTerminal(d, table)
	assert.Contains(t, out, d.File.Path()+":2:10")
	assert.Contains(t, out, "^^^^^^^^")
	assert.Contains(t, out, "mismatched operand types: i32 vs bool")
}

func TestRenderTerminal_FallsBackWhenLineMissing(t *testing.T) {
	d := &Diagnostic{Kind: KindUnterminatedString, Line: 42}
	out := RenderTerminal(d, source.LineTable{})
	assert.True(t, strings.HasPrefix(out, "error: "))
}

func TestToRecord_ConvertsOneBasedLineAndStripsIndentTabs(t *testing.T) {
	d := &Diagnostic{
		Kind: KindVarNotDeclared, File: source.New("a.flint"),
		Line: 3, Column: 9, Length: 4, Name: "foo",
	}
	rec := ToRecord(d, 2, 4)

	assert.Equal(t, [3]int{2, 3, 4}, rec.Range)
	assert.Equal(t, "Error", rec.Severity)
	assert.Equal(t, d.File.Path(), rec.File)
	assert.Contains(t, rec.Message, `variable "foo" is not declared`)
}

func TestRecordSchema_DescribesEveryRecordField(t *testing.T) {
	schema := RecordSchema()
	require.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"range", "severity", "message", "file"}, schema.Required)
	assert.Contains(t, schema.Properties, "range")
	assert.Equal(t, []any{"Error"}, schema.Properties["severity"].Enum)
}

func TestSink_SortsByFileLineColumnAndTracksExitCode(t *testing.T) {
	fileA, fileB := source.New("dir_a/a.flint"), source.New("dir_b/b.flint")
	require.Less(t, fileA.Path(), fileB.Path(), "test fixture requires a.flint to sort before b.flint by path")

	sink := NewSink(false)
	assert.Equal(t, 0, sink.ExitCode())

	sink.Report(&Diagnostic{Kind: KindVarNotDeclared, File: fileB, Line: 1, Column: 1})
	sink.Report(&Diagnostic{Kind: KindVarNotDeclared, File: fileA, Line: 5, Column: 1})
	sink.Report(&Diagnostic{Kind: KindVarNotDeclared, File: fileA, Line: 2, Column: 9})

	require.Equal(t, 3, sink.Count())
	assert.True(t, sink.HasErrors())
	assert.Equal(t, 1, sink.ExitCode())

	sorted := sink.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, fileA.Path(), sorted[0].File.Path())
	assert.Equal(t, 2, sorted[0].Line)
	assert.Equal(t, fileA.Path(), sorted[1].File.Path())
	assert.Equal(t, 5, sorted[1].Line)
	assert.Equal(t, fileB.Path(), sorted[2].File.Path())
}

func TestSink_HardCrashFlagIsExposedVerbatim(t *testing.T) {
	assert.True(t, NewSink(true).HardCrash())
	assert.False(t, NewSink(false).HardCrash())
}
