package diag

import "sort"

// Sink accumulates diagnostics across every stage of a compilation. It is
// not safe for concurrent writes from multiple goroutines without external
// synchronization. The driver fills it from a single goroutine once
// Compile has returned; during compilation, diagnostics are collected by
// compiler.Context under its own lock.
type Sink struct {
	diagnostics []*Diagnostic
	hardCrash   bool
}

func NewSink(hardCrash bool) *Sink {
	return &Sink{hardCrash: hardCrash}
}

// Report appends d. If the sink is in hard-crash mode, the caller is
// expected to check HasErrors after each Report and abort immediately
// (spec.md §4.5 "Failure policy": "in hard-crash mode, the process
// aborts after the diagnostic").
func (s *Sink) Report(d *Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

func (s *Sink) HardCrash() bool { return s.hardCrash }

func (s *Sink) HasErrors() bool { return len(s.diagnostics) > 0 }

func (s *Sink) Count() int { return len(s.diagnostics) }

// Sorted returns every diagnostic ordered by (file, line, column), per
// spec.md §7: "diagnostics are sorted by (file, line, column) on exit."
func (s *Sink) Sorted() []*Diagnostic {
	out := make([]*Diagnostic, len(s.diagnostics))
	copy(out, s.diagnostics)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File.Path() != b.File.Path() {
			return a.File.Path() < b.File.Path()
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return out
}

// ExitCode returns the process exit code spec.md §7 mandates: non-zero
// whenever any diagnostic was reported.
func (s *Sink) ExitCode() int {
	if s.HasErrors() {
		return 1
	}
	return 0
}
