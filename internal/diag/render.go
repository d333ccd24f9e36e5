package diag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/standardbeagle/flintc/internal/source"
)

// contextLines is N in spec.md §4.5's "reconstruct up to N surrounding
// source lines".
const contextLines = 8

// RenderTerminal reconstructs the error's surrounding source (walking
// backward while the indent level stays >= the error line's own, per
// spec.md §4.5) and renders a box-drawing frame with a line-number
// gutter and an underline beneath the offending span.
func RenderTerminal(d *Diagnostic, table source.LineTable) string {
	var b strings.Builder

	errLine, ok := table.At(d.Line)
	if !ok {
		fmt.Fprintf(&b, "error: %s\n", d.Message())
		return b.String()
	}

	first := d.Line
	for n := 0; n < contextLines; n++ {
		candidate := first - 1
		line, ok := table.At(candidate)
		if !ok {
			break
		}
		if strings.TrimSpace(line.Text) == "" {
			first = candidate
			continue
		}
		if line.Indent < errLine.Indent {
			break
		}
		first = candidate
	}

	gutterWidth := len(strconv.Itoa(d.Line))
	fmt.Fprintf(&b, "┌─ %s:%d:%d %s\n", d.File.Path(), d.Line, d.Column, d.Stage)
	for ln := first; ln <= d.Line; ln++ {
		line, ok := table.At(ln)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "│ %*d │ %s\n", gutterWidth, ln, expandIndent(line.Text))
		if ln == d.Line {
			pad := strings.Repeat(" ", gutterWidth) + " │ " + strings.Repeat(" ", max(d.Column-1, 0))
			underline := strings.Repeat("^", max(d.Length, 1))
			fmt.Fprintf(&b, "%s%s %s\n", pad, underline, d.Message())
		}
	}
	fmt.Fprintf(&b, "└─\n")
	if d.CallSite != "" {
		fmt.Fprintf(&b, "  (raised at %s)\n", d.CallSite)
	}
	return b.String()
}

// expandIndent renders each leading tab character as a '»' marker padded
// to four columns; leading spaces are kept as plain spaces and no
// terminal styling is applied.
func expandIndent(line string) string {
	i := 0
	var b strings.Builder
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		if line[i] == '\t' {
			b.WriteString("»   ")
		} else {
			b.WriteByte(' ')
		}
		i++
	}
	b.WriteString(line[i:])
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Record is the structured diagnostic record emitted per error for tool
// consumption (spec.md §6). The character offset subtracts
// indent-level*(TabSize-1) from the column so editors see character
// positions rather than tab-expanded columns (spec.md §4.5 "Structured
// rendering").
type Record struct {
	Range    [3]int `json:"range"` // [line0, character0, length]
	Severity string `json:"severity"`
	Message  string `json:"message"`
	File     string `json:"file"`
}

// ToRecord converts a Diagnostic into its structured form. tabSize must
// match the value the lexer used to expand tabs into columns.
func ToRecord(d *Diagnostic, indentLevel, tabSize int) Record {
	character := d.Column - indentLevel*(tabSize-1)
	if character < 0 {
		character = 0
	}
	return Record{
		Range:    [3]int{d.Line - 1, character, d.Length},
		Severity: "Error",
		Message:  d.Message(),
		File:     d.File.Path(),
	}
}
