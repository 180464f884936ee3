package wasmmodule

import "github.com/andrz-wasm/gcbuilder/wasmtype"

// LocalKind distinguishes a Function's parameters from its additional
// locals (spec.md §3, "Local").
type LocalKind uint8

const (
	Param LocalKind = iota
	LocalVar
)

// Local belongs to exactly one Function: a kind, a value type, an
// optional display name, and an index unique within the function's
// combined param+local space. It satisfies instr.LocalRef so it can be
// referenced directly by LocalGet/LocalSet without wasmmodule and instr
// importing each other.
type Local struct {
	Kind  LocalKind
	Type  wasmtype.ValueType
	Name  string
	index int
}

func (l *Local) LocalIndex() int   { return l.index }
func (l *Local) LocalName() string { return l.Name }
