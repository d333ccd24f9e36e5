package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInto_Defaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, parseInto(cfg, ""))

	assert.Equal(t, 4, cfg.TabSize)
	assert.False(t, cfg.HardCrash)
	assert.Equal(t, "./lib", cfg.LibraryRoot)
	assert.Equal(t, []string{"__flint_", "__fip_"}, cfg.ReservedIdentifierPrefixes)
}

func TestParseInto_Overrides(t *testing.T) {
	content := `
tab-size 2
hard-crash true
library-root "./vendor/flint-lib"
core-modules "net" "time"
`
	cfg := Default()
	require.NoError(t, parseInto(cfg, content))

	assert.Equal(t, 2, cfg.TabSize)
	assert.True(t, cfg.HardCrash)
	assert.Equal(t, "./vendor/flint-lib", cfg.LibraryRoot)
	assert.Equal(t, []string{"net", "time"}, cfg.CoreModules)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsProjectFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".flint.kdl"), []byte("tab-size 8\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.TabSize)
}

func TestConfig_ApplyOverridesWinsOverFile(t *testing.T) {
	cfg := Default()
	tabSize := 2
	require.NoError(t, parseInto(cfg, "tab-size 4\n"))
	cfg.Apply(Overrides{TabSize: &tabSize})

	assert.Equal(t, 2, cfg.TabSize)
}
