// Package wasmmodule implements the ModuleBuilder from spec.md §4.5:
// the factory that mints types and functions with contiguous indices,
// and the section emitter that turns a built module into its text
// (s-expression) or binary (Wasm-encoded) form.
package wasmmodule

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
	"github.com/andrz-wasm/gcbuilder/trace"
	"github.com/andrz-wasm/gcbuilder/wasmtype"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6D}
var wasmVersion = []byte{0x01, 0x00, 0x00, 0x00}

const (
	sectionType     = 1
	sectionFunction = 3
	sectionCode     = 10
)

// ModuleBuilder owns every composite type and function minted through
// its factory methods, in registration order, and hands out the next
// free index each time. The embedder's arena/region allocator (spec.md
// §5) is represented here by ordinary Go slices: the builder's own
// garbage-collected lifetime stands in for the arena, since nothing in
// this core ever frees an individual object before the builder itself
// is dropped. See DESIGN.md for this Open Question's resolution.
type ModuleBuilder struct {
	types     []wasmtype.CompositeType
	functions []*Function

	// Cached singletons for the stateless abstract type values, so
	// repeated calls don't mint distinct-but-equal instances (spec.md
	// §3, "Ownership").
	I32, I64, F32, F64, V128                       wasmtype.NumType
	HeapFunc, HeapExtern, HeapAny, HeapEq, HeapI31 wasmtype.HeapType
	FuncRef, ExternRef, AnyRef, EqRef, I31Ref      wasmtype.RefType
}

// New returns an empty ModuleBuilder with its abstract-type singletons
// populated.
func New() *ModuleBuilder {
	b := &ModuleBuilder{
		I32: wasmtype.I32, I64: wasmtype.I64, F32: wasmtype.F32, F64: wasmtype.F64, V128: wasmtype.V128,
		HeapFunc: wasmtype.HeapFunc, HeapExtern: wasmtype.HeapExtern, HeapAny: wasmtype.HeapAny,
		HeapEq: wasmtype.HeapEq, HeapI31: wasmtype.HeapI31,
	}
	b.FuncRef = wasmtype.RefType{Nullable: true, Heap: b.HeapFunc}
	b.ExternRef = wasmtype.RefType{Nullable: true, Heap: b.HeapExtern}
	b.AnyRef = wasmtype.RefType{Nullable: true, Heap: b.HeapAny}
	b.EqRef = wasmtype.RefType{Nullable: true, Heap: b.HeapEq}
	b.I31Ref = wasmtype.RefType{Nullable: false, Heap: b.HeapI31}
	return b
}

// MakeFieldType builds a FieldType from a full value type.
func (b *ModuleBuilder) MakeFieldType(v wasmtype.ValueType, mut bool) wasmtype.FieldType {
	return wasmtype.NewValueFieldType(v, mut)
}

// MakePackedFieldType builds a FieldType from a packed storage kind.
func (b *ModuleBuilder) MakePackedFieldType(packed wasmtype.PackedType, mut bool) wasmtype.FieldType {
	return wasmtype.NewPackedFieldType(packed, mut)
}

// MakeFuncType registers a new FuncType at the next free type index.
// Parameters are added incrementally via the returned handle.
func (b *ModuleBuilder) MakeFuncType(result wasmtype.ValueType) *wasmtype.FuncType {
	ft := wasmtype.NewFuncType(len(b.types), result)
	b.types = append(b.types, ft)
	trace.Printf("wasmmodule: registered func type %d\n", ft.Index())
	return ft
}

// MakeStructType registers a new StructType at the next free type
// index. Fields are added incrementally via the returned handle.
func (b *ModuleBuilder) MakeStructType() *wasmtype.StructType {
	st := wasmtype.NewStructType(len(b.types))
	b.types = append(b.types, st)
	trace.Printf("wasmmodule: registered struct type %d\n", st.Index())
	return st
}

// MakeArrayType registers a new ArrayType at the next free type index.
func (b *ModuleBuilder) MakeArrayType(elem wasmtype.FieldType) *wasmtype.ArrayType {
	at := wasmtype.NewArrayType(len(b.types), elem)
	b.types = append(b.types, at)
	trace.Printf("wasmmodule: registered array type %d\n", at.Index())
	return at
}

// MakeHeapType returns a concrete HeapType referring to def, which
// must already be registered with this builder.
func (b *ModuleBuilder) MakeHeapType(def wasmtype.CompositeType) wasmtype.HeapType {
	return wasmtype.NewConcreteHeapType(def)
}

// MakeRefType builds a RefType over the given heap type.
func (b *ModuleBuilder) MakeRefType(nullable bool, heap wasmtype.HeapType) wasmtype.RefType {
	return wasmtype.RefType{Nullable: nullable, Heap: heap}
}

// AddFunction registers a new Function at the next free function
// index, referring to a FuncType already registered with this builder.
func (b *ModuleBuilder) AddFunction(name string, ft *wasmtype.FuncType) *Function {
	f := newFunction(len(b.functions), name, ft)
	b.functions = append(b.functions, f)
	trace.Printf("wasmmodule: registered function %d (%q)\n", f.Index(), name)
	return f
}

// Text renders the whole module as a single (module ...) s-expression
// tree: one (type ...) entry per composite, then one (func ...) entry
// per function, in registration order.
func (b *ModuleBuilder) Text() sexpr.Node {
	l := sexpr.NewList(sexpr.Symbol("module"))
	for _, t := range b.types {
		l.Add(sexpr.NewList(sexpr.Symbol("type"), t.Text()))
	}
	for _, f := range b.functions {
		l.Add(f.Text())
	}
	return l
}

// Binary emits the complete Wasm-encoded module: magic, version, then
// the type, function, and code sections in ascending section-id order,
// each framed with the scoped length-prefix facility (spec.md §4.5).
func (b *ModuleBuilder) Binary(w *bytestream.ByteWriter) {
	w.WriteBytes(wasmMagic)
	w.WriteBytes(wasmVersion)

	w.WriteU8(sectionType)
	bytestream.WithLengthPrefix(w, func(sub *bytestream.ByteWriter) {
		sub.WriteUnsigned(uint64(len(b.types)))
		for _, t := range b.types {
			t.Binary(sub)
		}
	})

	w.WriteU8(sectionFunction)
	bytestream.WithLengthPrefix(w, func(sub *bytestream.ByteWriter) {
		sub.WriteUnsigned(uint64(len(b.functions)))
		for _, f := range b.functions {
			sub.WriteUnsigned(uint64(f.Type.Index()))
		}
	})

	w.WriteU8(sectionCode)
	bytestream.WithLengthPrefix(w, func(sub *bytestream.ByteWriter) {
		sub.WriteUnsigned(uint64(len(b.functions)))
		for _, f := range b.functions {
			bytestream.WithLengthPrefix(sub, func(entry *bytestream.ByteWriter) {
				f.Binary(entry)
			})
		}
	})
}
