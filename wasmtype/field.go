package wasmtype

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
)

// PackedType is the storage-only narrow integer kind a FieldType may
// carry instead of a full ValueType (spec.md §3, glossary "Packed
// field type").
type PackedType uint8

const (
	// PackedNone means the field's storage is a full ValueType, not a
	// packed one; FieldType.Value is set in that case.
	PackedNone PackedType = iota
	PackedI8
	PackedI16
)

// FieldType is the storage/mutability pair struct and array fields are
// built from (spec.md §3).
type FieldType struct {
	Value  ValueType // valid only when Packed == PackedNone
	Packed PackedType
	Mut    bool
}

// NewValueFieldType builds a FieldType whose storage is a full value type.
func NewValueFieldType(v ValueType, mut bool) FieldType {
	return FieldType{Value: v, Mut: mut}
}

// NewPackedFieldType builds a FieldType whose storage is a packed
// integer (i8 or i16).
func NewPackedFieldType(packed PackedType, mut bool) FieldType {
	return FieldType{Packed: packed, Mut: mut}
}

func (f FieldType) storageText() sexpr.Node {
	switch f.Packed {
	case PackedI8:
		return sexpr.Symbol("i8")
	case PackedI16:
		return sexpr.Symbol("i16")
	default:
		return f.Value.Text()
	}
}

func (f FieldType) Text() sexpr.Node {
	inner := f.storageText()
	if f.Mut {
		return sexpr.NewList(sexpr.Symbol("mut"), inner)
	}
	return inner
}

func (f FieldType) Binary(w *bytestream.ByteWriter) {
	switch f.Packed {
	case PackedI8:
		w.WriteU8(0x7A)
	case PackedI16:
		w.WriteU8(0x79)
	default:
		f.Value.Binary(w)
	}
	if f.Mut {
		w.WriteU8(0x01)
	} else {
		w.WriteU8(0x00)
	}
}

// Field is one member of a StructType: a FieldType plus the zero-based
// index it was inserted at (spec.md §3).
type Field struct {
	Type  FieldType
	Index int
}

func (f *Field) Text() sexpr.Node { return f.Type.Text() }

func (f *Field) Binary(w *bytestream.ByteWriter) { f.Type.Binary(w) }
