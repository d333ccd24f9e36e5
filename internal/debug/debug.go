// Package debug provides gated internal tracing for the lexer, parser,
// resolver and driver. Output is off by default and never reaches stdout
// unless explicitly enabled, so it never interferes with compiler output
// (diagnostics, --output-ll-file) or the structured diagnostic record.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// EnableDebug can be set at build time:
// go build -ldflags "-X github.com/standardbeagle/flintc/internal/debug.EnableDebug=true"
var EnableDebug = "false"

var (
	mu     sync.Mutex
	output io.Writer
)

// SetOutput sets the writer debug traces are written to. Pass nil to
// disable tracing entirely (the default).
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Enabled reports whether tracing is currently active, checking the
// build flag and the FLINT_DEBUG environment variable.
func Enabled() bool {
	if EnableDebug == "true" {
		return true
	}
	v := os.Getenv("FLINT_DEBUG")
	return v == "1" || v == "true"
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Tracef writes a trace line tagged with component, only when Enabled()
// and an output writer has been configured via SetOutput.
func Tracef(component, format string, args ...any) {
	if !Enabled() {
		return
	}
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[%s] "+format+"\n", append([]any{component}, args...)...)
}
