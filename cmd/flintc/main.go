// Command flintc is the Flint compiler front-end driver (spec.md §6
// "External interfaces"): it lexes, parses and resolves one entry file
// plus everything it transitively imports, hands each file to a backend
// leaves-first, and reports every diagnostic gathered along the way —
// both as a human-readable terminal rendering and as the structured
// per-error record spec.md §6 names for tool consumption.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/flintc/internal/cerr"
	"github.com/standardbeagle/flintc/internal/compiler"
	"github.com/standardbeagle/flintc/internal/config"
	"github.com/standardbeagle/flintc/internal/corelib"
	"github.com/standardbeagle/flintc/internal/debug"
	"github.com/standardbeagle/flintc/internal/diag"
	"github.com/standardbeagle/flintc/internal/fip"
	"github.com/standardbeagle/flintc/internal/lexer"
	"github.com/standardbeagle/flintc/internal/source"
)

// newApp builds the flintc CLI app (spec.md §6 "Command-line surface").
// Split out from main so tests can drive it with a fixed argv and
// redirected writers without exercising os.Exit.
func newApp() *cli.App {
	return &cli.App{
		Name:  "flintc",
		Usage: "compile a Flint source file",
		// Help is handled explicitly in run (spec.md §6: "--help, -h: print
		// help and exit 1"), rather than urfave/cli's built-in help handling,
		// which exits 0.
		HideHelp: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "input source file", Required: true},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output executable name", Value: "main"},
			&cli.StringFlag{Name: "flags", Usage: "pass-through flags for the backend linker (must be quoted)"},
			&cli.StringFlag{Name: "output-ll-file", Usage: "emit intermediate representation to this path"},
			&cli.StringFlag{Name: "root", Usage: "project root (defaults to the input file's directory)"},
			&cli.BoolFlag{Name: "hard-crash", Usage: "render only the first diagnostic on stderr; compilation still runs to completion"},
			&cli.BoolFlag{Name: "debug", Usage: "enable internal trace output on stderr"},
			&cli.IntFlag{Name: "jobs", Usage: "worker pool size", Value: compiler.DefaultParallelism},
			&cli.BoolFlag{Name: "help", Aliases: []string{"h"}, Usage: "show help"},
		},
		Action: run,
	}
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			if msg := exitErr.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, "error:", msg)
			}
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("help") {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}

	debugEnabled := c.Bool("debug") || debug.Enabled()

	// `--flags` must be passed as one quoted string ("-O2 -march=native"),
	// never as bare words, since the backend linker treats it as a single
	// pass-through argument. An unquoted value splits across cli.Args(),
	// leaving leftovers urfave/cli couldn't attach to any flag (spec.md §6,
	// SPEC_FULL.md §4.6).
	if c.Args().Len() > 0 {
		d := diag.Emit(diag.Diagnostic{
			Kind: diag.KindCliParsing,
			Name: fmt.Sprintf("unexpected argument %q — did you forget to quote --flags?", c.Args().First()),
		}, debugEnabled)
		fmt.Fprint(c.App.ErrWriter, diag.RenderTerminal(d, nil))
		return cli.Exit("", 1)
	}

	filePath := c.String("file")
	if debugEnabled {
		debug.EnableDebug = "true"
		debug.SetOutput(os.Stderr)
	}

	root := c.String("root")
	if root == "" {
		root = filepath.Dir(filePath)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return cerr.CLIErrorf("flintc.run", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if c.IsSet("hard-crash") {
		hardCrash := c.Bool("hard-crash")
		cfg.Apply(config.Overrides{HardCrash: &hardCrash})
	}

	fipIndex, err := fip.Load(root)
	if err != nil {
		return err
	}

	var libraryRoots []string
	if cfg.LibraryRoot != "" {
		libraryRoots = append(libraryRoots, filepath.Join(root, cfg.LibraryRoot))
	}
	libraries := corelib.NewLibraryIndex(libraryRoots)

	ctx := compiler.NewContext(source.DiskLoader{}, libraries, fipIndex, debugEnabled)
	backend := newIRBackend(c.String("output-ll-file"))

	result, err := ctx.Compile(context.Background(), filePath, backend, c.Int("jobs"))
	if err != nil {
		return err
	}

	sink := diag.NewSink(cfg.HardCrash)
	for _, d := range result.Diags {
		sink.Report(d)
	}
	sorted := sink.Sorted()

	for _, d := range sorted {
		fmt.Fprint(c.App.ErrWriter, diag.RenderTerminal(d, lineTableFor(ctx, d)))
		if sink.HardCrash() {
			break
		}
	}

	if sink.HasErrors() {
		if err := emitRecords(c.App.Writer, sorted, ctx, lexer.TabSize); err != nil {
			return err
		}
		return cli.Exit("", sink.ExitCode())
	}

	if err := backend.Link(c.String("flags"), c.String("out")); err != nil {
		return err
	}
	return nil
}

// lineTableFor returns the line table for d's file, or an empty table if
// that file was never successfully parsed (e.g. it failed to load).
func lineTableFor(ctx *compiler.Context, d *diag.Diagnostic) source.LineTable {
	node, ok := ctx.Node(d.File)
	if !ok {
		return nil
	}
	return node.Lines
}

// emitRecords writes the structured diagnostic record array spec.md §6
// describes, one entry per diagnostic, to w (stdout in normal
// operation) for tool consumption.
func emitRecords(w io.Writer, diags []*diag.Diagnostic, ctx *compiler.Context, tabSize int) error {
	records := make([]diag.Record, 0, len(diags))
	for _, d := range diags {
		indentLevel := 0
		if table := lineTableFor(ctx, d); table != nil {
			if line, ok := table.At(d.Line); ok {
				indentLevel = line.Indent
			}
		}
		records = append(records, diag.ToRecord(d, indentLevel, tabSize))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return cerr.IOErrorf("flintc.emitRecords", "stdout", err)
	}
	return nil
}
