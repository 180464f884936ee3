package wasmtype

import (
	"github.com/andrz-wasm/gcbuilder/bytestream"
	"github.com/andrz-wasm/gcbuilder/sexpr"
)

// Rtt is a runtime type descriptor of a given depth over a heap type,
// used by Wasm GC downcasts (spec.md §3, glossary "RTT").
type Rtt struct {
	Depth uint32
	Heap  HeapType
}

func (Rtt) isValueType() {}

func (r Rtt) Text() sexpr.Node {
	return sexpr.NewList(sexpr.Symbol("rtt"), sexpr.Integer(int64(r.Depth)), r.Heap.Text())
}

func (r Rtt) Binary(w *bytestream.ByteWriter) {
	w.WriteSigned(-0x17)
	w.WriteUnsigned(uint64(r.Depth))
	r.Heap.Binary(w)
}
