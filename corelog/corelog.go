// Package corelog is the compositing core's minimal logging shim. The
// teacher has no logging dependency at all — willow is a library meant to
// be embedded, and its debug.go (deleted here, see DESIGN.md) wrote
// diagnostics straight to fmt.Fprintf(os.Stderr, ...). This package keeps
// that same minimal approach but wraps a package-level *log.Logger so
// tests can redirect output instead of scraping stderr.
package corelog

import (
	"log"
	"os"
)

// Logger is the destination for core diagnostics. Tests may replace it
// with one writing to a buffer.
var Logger = log.New(os.Stderr, "core: ", log.LstdFlags)

// Warnf logs a one-shot warning, e.g. a shader compile/link failure or a
// degenerate-math fallback (§7 categories 2 and 4).
func Warnf(format string, args ...any) {
	Logger.Printf("WARN "+format, args...)
}

// Infof logs routine progress, e.g. job lifecycle events.
func Infof(format string, args ...any) {
	Logger.Printf("INFO "+format, args...)
}
