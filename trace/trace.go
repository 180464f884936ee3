// Package trace holds the single feature flag this core consults at
// runtime: whether to emit diagnostic messages while building or
// serialising a module. The flag never changes the byte output, only
// whether Printf-shaped side channels fire.
package trace

import (
	"fmt"
	"os"
)

// Enabled gates every call to Printf. It starts false and is meant to be
// flipped by an embedder (or a test) that wants to see what the builder
// is doing, mirroring FLAG_trace_wasm_compilation in the source this
// core is modeled on.
var Enabled bool

// Printf writes a trace message to standard error if Enabled is true. It
// never returns an error and never touches the byte streams the builder
// produces.
func Printf(format string, args ...any) {
	if !Enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
