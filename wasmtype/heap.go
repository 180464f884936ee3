package wasmtype

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
	"github.com/andrz-wasm/gcbuilder/wasmerr"
)

// CompositeType is the interface every definition type (FuncType,
// StructType, ArrayType) satisfies. A concrete HeapType holds one of
// these as a back reference, resolved lazily during emission by asking
// it for its assigned Index (spec.md §9, "back references").
type CompositeType interface {
	Index() int
	Text() sexpr.Node
	Binary(w *bytestream.ByteWriter)
}

type heapKind uint8

const (
	heapFunc heapKind = iota
	heapExtern
	heapAny
	heapEq
	heapI31
	heapTypeIdx
)

// HeapType is the sum type described in spec.md §3: five abstract
// variants plus a concrete back-reference to a composite type.
type HeapType struct {
	kind heapKind
	def  CompositeType // only set when kind == heapTypeIdx
}

// The five abstract heap types are stateless and safe to share; these
// package-level values are the "singletons" spec.md §9 recommends so
// callers never need to mint a fresh instance for the same abstract
// type. ModuleBuilder exposes the same values through named fields for
// callers that prefer going through the builder.
var (
	HeapFunc   = HeapType{kind: heapFunc}
	HeapExtern = HeapType{kind: heapExtern}
	HeapAny    = HeapType{kind: heapAny}
	HeapEq     = HeapType{kind: heapEq}
	HeapI31    = HeapType{kind: heapI31}
)

// NewConcreteHeapType returns a HeapType referring to a composite type
// already registered with some ModuleBuilder. It panics if def is nil,
// since a concrete heap type with no referent violates the invariant
// in spec.md §3 that "every HeapType::TypeIdx ... points to a
// composite registered with the same ModuleBuilder".
func NewConcreteHeapType(def CompositeType) HeapType {
	if def == nil {
		wasmerr.Violate("NewConcreteHeapType: def must not be nil")
	}
	return HeapType{kind: heapTypeIdx, def: def}
}

// IsConcrete reports whether h refers to a composite type by index
// rather than being one of the five abstract kinds.
func (h HeapType) IsConcrete() bool { return h.kind == heapTypeIdx }

func (h HeapType) Text() sexpr.Node {
	switch h.kind {
	case heapFunc:
		return sexpr.Symbol("func")
	case heapExtern:
		return sexpr.Symbol("extern")
	case heapAny:
		return sexpr.Symbol("any")
	case heapEq:
		return sexpr.Symbol("eq")
	case heapI31:
		return sexpr.Symbol("i31")
	case heapTypeIdx:
		return sexpr.Integer(h.def.Index())
	default:
		panic("wasmtype: unknown HeapType")
	}
}

func (h HeapType) Binary(w *bytestream.ByteWriter) {
	switch h.kind {
	case heapFunc:
		w.WriteSigned(-0x10)
	case heapExtern:
		w.WriteSigned(-0x11)
	case heapAny:
		// The Wasm GC MVP reserves -0x12 for any, but V8 (the target
		// engine this core was validated against) does not accept it.
		// See spec.md §4.2 and the Open Questions section.
		wasmerr.Unsupported("HeapType.Any", "target engine does not implement anyref")
	case heapEq:
		w.WriteSigned(-0x13)
	case heapI31:
		// The GC proposal document lists i31 as -0x17, but the target
		// engine encodes it as -0x16; spec.md §9 preserves the
		// engine-compatible constant. See DESIGN.md.
		w.WriteSigned(-0x16)
	case heapTypeIdx:
		w.WriteSigned(int64(h.def.Index()))
	default:
		panic("wasmtype: unknown HeapType")
	}
}
