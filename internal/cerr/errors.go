// Package cerr holds the driver's internal (non-diagnostic) error types:
// failures that abort a compilation before any source has been lexed, such
// as an unreadable --file path or a malformed project config. These are
// plain Go errors (wrapped with fmt.Errorf/%w), distinct from
// internal/diag.Diagnostic, which models the rich, source-annotated errors
// the compiler raises once lexing has begun.
package cerr

import (
	"fmt"
	"time"
)

// Kind classifies an internal error for callers that want to branch on it
// without string-matching Error().
type Kind string

const (
	KindIO     Kind = "io"
	KindConfig Kind = "config"
	KindCLI    Kind = "cli"
	KindLib    Kind = "library_cache"
)

// CompilerError wraps a failure that is not associated with a specific
// source position (if it were, it would be a diag.Diagnostic instead).
type CompilerError struct {
	Kind       Kind
	Operation  string
	Path       string
	Underlying error
	At         time.Time
}

func New(kind Kind, op string, err error) *CompilerError {
	return &CompilerError{Kind: kind, Operation: op, Underlying: err, At: time.Now()}
}

func (e *CompilerError) WithPath(path string) *CompilerError {
	e.Path = path
	return e
}

func (e *CompilerError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s %q: %v", e.Kind, e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Operation, e.Underlying)
}

func (e *CompilerError) Unwrap() error {
	return e.Underlying
}

// IOErrorf wraps a disk I/O failure (source file unreadable, output path
// unwritable) encountered outside of lexing/parsing.
func IOErrorf(op, path string, err error) *CompilerError {
	return New(KindIO, op, err).WithPath(path)
}

// ConfigErrorf wraps a project-config (.flint.kdl) load/parse failure.
func ConfigErrorf(op, path string, err error) *CompilerError {
	return New(KindConfig, op, err).WithPath(path)
}

// CLIErrorf wraps a command-line argument failure (such as a --root path
// that cannot be made absolute) surfaced by the driver before any
// compilation starts. An unquoted --flags value is reported as a
// diag.KindCliParsing diagnostic instead.
func CLIErrorf(op string, err error) *CompilerError {
	return New(KindCLI, op, err)
}
