// Package wasmtype implements the type-system model from spec.md §3-4:
// value types, heap types, reference types, runtime type descriptors,
// packed field types, and the definitions of composite (function,
// struct, array) types. Every variant knows how to render itself as
// text (an sexpr.Node) and as binary (onto a bytestream.ByteWriter),
// matching the OutputBinary/Serialize pair the original assembler used.
package wasmtype

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
)

// ValueType is the sum type of NumType, RefType, and Rtt (spec.md §3).
type ValueType interface {
	isValueType()
	Text() sexpr.Node
	Binary(w *bytestream.ByteWriter)
}

// NumType is one of the five Wasm numeric value types.
type NumType uint8

const (
	I32 NumType = iota
	I64
	F32
	F64
	V128
)

func (NumType) isValueType() {}

func (t NumType) Text() sexpr.Node {
	switch t {
	case I32:
		return sexpr.Symbol("i32")
	case I64:
		return sexpr.Symbol("i64")
	case F32:
		return sexpr.Symbol("f32")
	case F64:
		return sexpr.Symbol("f64")
	case V128:
		return sexpr.Symbol("v128")
	default:
		panic("wasmtype: unknown NumType")
	}
}

func (t NumType) Binary(w *bytestream.ByteWriter) {
	switch t {
	case I32:
		w.WriteU8(0x7F)
	case I64:
		w.WriteU8(0x7E)
	case F32:
		w.WriteU8(0x7D)
	case F64:
		w.WriteU8(0x7C)
	case V128:
		w.WriteU8(0x7B)
	default:
		panic("wasmtype: unknown NumType")
	}
}
