package source

import "strings"

// Line is one entry of a FileNode's source-line table: the line's
// leading-indent level (in INDENT units, i.e. TabSize-column steps) and a
// borrowed view of its text (spec.md §3 "FileNode": "the source-line
// table (line index -> (indent level, line text view))").
type Line struct {
	Indent int
	Text   string
}

// LineTable is a 1-based (line 1 at index 0) table of every physical
// line in a file, built once after lexing and consulted by the
// diagnostics engine's terminal rendering (spec.md §4.5).
type LineTable []Line

// BuildLineTable splits raw source into a LineTable, computing each
// line's indent level from its leading whitespace (tabSize spaces, or one
// tab, per INDENT unit). CRLF line endings are normalized (CR dropped).
func BuildLineTable(src []byte, tabSize int) LineTable {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	rawLines := strings.Split(text, "\n")
	table := make(LineTable, 0, len(rawLines))
	for _, line := range rawLines {
		indent := 0
		col := 0
		for _, r := range line {
			switch r {
			case '\t':
				col += tabSize
			case ' ':
				col++
			default:
				goto doneCounting
			}
			if col >= tabSize {
				indent += col / tabSize
				col = col % tabSize
			}
		}
	doneCounting:
		table = append(table, Line{Indent: indent, Text: line})
	}
	return table
}

// At returns the 1-based line, or ok=false if out of range.
func (lt LineTable) At(line int) (Line, bool) {
	idx := line - 1
	if idx < 0 || idx >= len(lt) {
		return Line{}, false
	}
	return lt[idx], true
}
