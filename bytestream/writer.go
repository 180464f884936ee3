// Package bytestream implements the byte-level output protocol this
// core is built on: a growable byte buffer with fixed-width writes,
// LEB128/SLEB128 variable-length writes, raw byte runs, and a scoped
// length-prefix mechanism for Wasm's section-framing convention.
package bytestream

import (
	"encoding/binary"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/andrz-wasm/gcbuilder/leb128"
	"github.com/andrz-wasm/gcbuilder/wasmerr"
)

const initialCapacity = 16

// ByteWriter is a growable byte buffer. The zero value is an empty
// writer ready for use; New additionally preallocates initialCapacity
// bytes.
type ByteWriter struct {
	buf []byte
}

// New returns an empty ByteWriter with room for initialCapacity bytes
// before its first grow.
func New() *ByteWriter {
	return &ByteWriter{buf: make([]byte, 0, initialCapacity)}
}

// Write implements io.Writer so that encoding/binary (see WriteFixed)
// and anything else that wants a plain byte sink can target a
// ByteWriter directly.
func (w *ByteWriter) Write(p []byte) (int, error) {
	w.reserve(len(p))
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// WriteU8 appends a single byte verbatim.
func (w *ByteWriter) WriteU8(b byte) {
	w.reserve(1)
	w.buf = append(w.buf, b)
}

// WriteBytes appends buf verbatim.
func (w *ByteWriter) WriteBytes(buf []byte) {
	w.reserve(len(buf))
	w.buf = append(w.buf, buf...)
}

// WriteUnsigned appends the ULEB128 encoding of v.
func (w *ByteWriter) WriteUnsigned(v uint64) {
	w.WriteBytes(leb128.EncodeU64(v))
}

// WriteSigned appends the SLEB128 encoding of v.
func (w *ByteWriter) WriteSigned(v int64) {
	w.WriteBytes(leb128.EncodeS64(v))
}

// Position and BytesWritten both report the current buffer length; the
// two names are kept because callers read "position within the stream"
// and "bytes written so far" as two different questions even though
// they have the same answer here.
func (w *ByteWriter) Position() int     { return len(w.buf) }
func (w *ByteWriter) BytesWritten() int { return len(w.buf) }
func (w *ByteWriter) Bytes() []byte     { return w.buf }

func (w *ByteWriter) reserve(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	newCap := nextCapacity(cap(w.buf), len(w.buf)+n)
	grown := make([]byte, len(w.buf), newCap)
	copy(grown, w.buf)
	w.buf = grown
}

// nextCapacity doubles current until it can hold needed, starting from
// initialCapacity if current is zero. This mirrors the
// grow-by-doubling-or-round-up policy of the WriteStreamBase this
// package is modeled on (see original_source/runtime/vm/datastream.h).
func nextCapacity[T constraints.Integer](current, needed T) T {
	grown := current
	if grown == 0 {
		grown = initialCapacity
	}
	for grown < needed {
		grown *= 2
	}
	return grown
}

// WriteFixed appends the little-endian encoding of a fixed-width value.
// It is a free function rather than a method because Go methods cannot
// carry their own type parameters.
func WriteFixed[T constraints.Integer](w *ByteWriter, v T) {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		// Our sink's Write never fails, but binary.Write also rejects
		// types without a fixed size (int, uint, uintptr), which the
		// constraint admits; those end up here as a contract violation.
		wasmerr.Violate("WriteFixed: %v", err)
	}
}

// WithLengthPrefix runs body against a fresh sub-writer, then writes the
// sub-writer's byte count to parent as a ULEB128 followed by the
// sub-writer's bytes verbatim. This is the scoped length-prefix
// primitive spec.md §4.1 describes as a stack-scoped stream
// substitution; modeling it as a higher-order function instead makes
// nesting lexically obvious; two callers can't accidentally open two
// scopes over the same parent at once, because there is no shared
// mutable "current stream" pointer to race on.
func WithLengthPrefix(parent *ByteWriter, body func(sub *ByteWriter)) {
	sub := New()
	body(sub)
	n := sub.BytesWritten()
	if n > math.MaxUint32 {
		wasmerr.Violate("length-prefixed scope exceeded 4GiB (%d bytes)", n)
	}
	parent.WriteUnsigned(uint64(n))
	parent.WriteBytes(sub.Bytes())
}
