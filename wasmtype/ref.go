package wasmtype

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
)

// RefType is a (possibly nullable) reference to a HeapType. Both its
// text and binary forms prefer a shorthand notation whenever one
// applies (spec.md §4.2, "Shorthand rule") — the general `(ref null H)`
// / `(ref H)` forms are reserved for cases no shorthand covers.
type RefType struct {
	Nullable bool
	Heap     HeapType
}

func (RefType) isValueType() {}

// shorthand returns the shorthand symbol for r and true, or ("", false)
// if r has no shorthand and must use the general encoding.
func (r RefType) shorthand() (string, bool) {
	if !r.Nullable && r.Heap.kind == heapI31 {
		return "i31ref", true
	}
	if r.Nullable {
		switch r.Heap.kind {
		case heapFunc:
			return "funcref", true
		case heapExtern:
			return "externref", true
		case heapAny:
			return "anyref", true
		case heapEq:
			return "eqref", true
		}
	}
	return "", false
}

func (r RefType) Text() sexpr.Node {
	if sym, ok := r.shorthand(); ok {
		return sexpr.Symbol(sym)
	}
	list := sexpr.NewList(sexpr.Symbol("ref"))
	if r.Nullable {
		list.Add(sexpr.Symbol("null"))
	}
	list.Add(r.Heap.Text())
	return list
}

func (r RefType) Binary(w *bytestream.ByteWriter) {
	if !r.Nullable && r.Heap.kind == heapI31 {
		// ref i31 = i31ref; the heap tag alone already spells this out.
		w.WriteSigned(-0x16)
		return
	}
	if r.Nullable {
		switch r.Heap.kind {
		case heapFunc, heapExtern, heapAny, heapEq:
			// ref null {func,extern,any,eq} = {func,extern,any,eq}ref; the
			// abstract heap tag coincides with the nullable shorthand.
			r.Heap.Binary(w)
			return
		}
	}
	if r.Nullable {
		w.WriteSigned(-0x14)
	} else {
		w.WriteSigned(-0x15)
	}
	r.Heap.Binary(w)
}
