// Package config loads the optional `.flint.kdl` project file (spec.md
// §9 Open Question on project-level configuration; SPEC_FULL.md §5.3):
// settings that are awkward to express as one-shot CLI flags. The driver
// consumes HardCrash and LibraryRoot. TabSize, CoreModules and
// ReservedIdentifierPrefixes are loaded into Config but nothing reads
// them: the lexer, parser and diagnostic records use the fixed
// lexer.TabSize, the corelib.Modules table and the fixed `__flint_`/
// `__fip_` prefixes. CLI flags always take precedence over file config
// (Apply applies them last).
package config

// Config holds every `.flint.kdl`-configurable setting, pre-seeded with
// its defaults (spec.md §4.1 "TAB_SIZE", §4.3 reserved-name handling).
type Config struct {
	TabSize                    int
	HardCrash                  bool
	LibraryRoot                string
	CoreModules                []string
	ReservedIdentifierPrefixes []string
}

// Default returns the configuration used when no `.flint.kdl` file is
// present (or none of its nodes override a given setting).
func Default() *Config {
	return &Config{
		TabSize:                    4,
		HardCrash:                  false,
		LibraryRoot:                "./lib",
		CoreModules:                nil,
		ReservedIdentifierPrefixes: []string{"__flint_", "__fip_"},
	}
}

// Overrides is the subset of Config that the CLI driver may set
// explicitly; zero values mean "not specified on the command line" and
// leave the loaded/default value untouched (spec.md §5.3 "CLI flags
// always override file config").
type Overrides struct {
	TabSize     *int
	HardCrash   *bool
	LibraryRoot *string
}

// Apply layers o on top of c, CLI flags winning over file config.
func (c *Config) Apply(o Overrides) {
	if o.TabSize != nil {
		c.TabSize = *o.TabSize
	}
	if o.HardCrash != nil {
		c.HardCrash = *o.HardCrash
	}
	if o.LibraryRoot != nil {
		c.LibraryRoot = *o.LibraryRoot
	}
}
