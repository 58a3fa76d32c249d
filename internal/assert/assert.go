// Package assert provides a single helper for the fatal invariant
// violations the specification calls out as unrecoverable programmer
// errors (§4.8, §7 of SPEC_FULL.md): a walker observing a 0-branch
// cell that isn't the target, a reconstructor running out of stack,
// a CAS attempted against a contradictory prior state.
//
// These are translated from the original source's bare assert(false)
// calls into a single named helper so every call site reads the same
// way and panics carry a consistent, greppable message prefix.
package assert

import "fmt"

// Assertf panics with a formatted message if cond is false. It is
// reserved for conditions that indicate a bug in the solver itself,
// never for recoverable runtime conditions (use an error return for
// those).
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("mazerunner: invariant violated: "+format, args...))
	}
}
