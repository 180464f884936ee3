// Package wasmerr defines the error taxonomy this core surfaces to
// embedders: contract violations and unsupported-feature conditions
// that spec.md §7 calls fatal. Neither is meant to be recovered by the
// builder itself; embedders decide whether to log-and-abort or panic
// further up the stack.
package wasmerr

import "fmt"

// UnsupportedFeatureError is raised when the caller asks the builder to
// emit a construct the target engine does not accept. Today the only
// instance is HeapType Any (spec.md §4.2).
type UnsupportedFeatureError struct {
	Feature string
	Reason  string
}

func (e *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("wasm: unsupported feature %s: %s", e.Feature, e.Reason)
}

// ContractViolationError is raised when a caller breaks an invariant the
// builder trusts them to uphold, such as appending a Param local after a
// Local has already been added. These indicate a bug in the caller, not
// bad input data, so callers are expected to let them propagate rather
// than branch on them.
type ContractViolationError struct {
	Msg string
}

func (e *ContractViolationError) Error() string {
	return "wasm: contract violation: " + e.Msg
}

// Violate panics with a ContractViolationError built from format/args.
// It is the equivalent of the teacher's utils.Assert, specialised to
// this core's error taxonomy.
func Violate(format string, args ...any) {
	panic(&ContractViolationError{Msg: fmt.Sprintf(format, args...)})
}

// Unsupported panics with an UnsupportedFeatureError.
func Unsupported(feature, reason string) {
	panic(&UnsupportedFeatureError{Feature: feature, Reason: reason})
}
