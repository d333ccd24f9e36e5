package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func runApp(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	app := newApp()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	app.Writer = stdout
	app.ErrWriter = stderr
	err = app.Run(append([]string{"flintc"}, args...))
	return
}

func TestRun_CompilesCleanFileAndWritesIR(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.flint")
	writeFile(t, src, "def main() :\n\tprint(\"hi\\n\");\n")
	irPath := filepath.Join(dir, "out.ll")

	_, stderr, err := runApp(t, "--file", src, "--output-ll-file", irPath)
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	ir, err := os.ReadFile(irPath)
	require.NoError(t, err)
	assert.Contains(t, string(ir), "def main(0 params)")
}

func TestRun_DiagnosticsSuppressBackendAndExitNonZero(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.flint")
	writeFile(t, src, "use \"missing.flint\";\ndef main() :\n\tprint(\"hi\\n\");\n")
	irPath := filepath.Join(dir, "out.ll")

	stdout, _, err := runApp(t, "--file", src, "--output-ll-file", irPath)
	require.Error(t, err)

	_, statErr := os.Stat(irPath)
	assert.True(t, os.IsNotExist(statErr), "backend Link must not run when diagnostics are present")
	assert.Contains(t, stdout.String(), `"severity"`)
}

func TestRun_RequiresFileFlag(t *testing.T) {
	_, _, err := runApp(t)
	assert.Error(t, err)
}

func TestRun_HelpFlagExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.flint")
	writeFile(t, src, "def main() :\n\tprint(\"hi\\n\");\n")

	stdout, _, err := runApp(t, "--file", src, "--help")
	require.Error(t, err)

	exitErr, ok := err.(interface{ ExitCode() int })
	require.True(t, ok, "help must return an ExitCoder")
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stdout.String(), "flintc")
}

func TestRun_UnquotedFlagsValueIsRejected(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.flint")
	writeFile(t, src, "def main() :\n\tprint(\"hi\\n\");\n")

	_, stderr, err := runApp(t, "--file", src, "--flags", "optimize", "extra-leftover-arg")
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "quote --flags")
}
