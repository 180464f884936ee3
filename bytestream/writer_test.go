package bytestream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrz-wasm/gcbuilder/bytestream"
)

func TestWriteU8AndBytes(t *testing.T) {
	w := bytestream.New()
	w.WriteU8(0x00)
	w.WriteU8('a')
	w.WriteBytes([]byte{'s', 'm'})
	require.Equal(t, []byte{0x00, 'a', 's', 'm'}, w.Bytes())
	require.Equal(t, 4, w.BytesWritten())
	require.Equal(t, 4, w.Position())
}

func TestWriteFixedLittleEndian(t *testing.T) {
	w := bytestream.New()
	bytestream.WriteFixed(w, uint32(0x01000000))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, w.Bytes())
}

func TestWriteUnsignedAndSigned(t *testing.T) {
	w := bytestream.New()
	w.WriteUnsigned(5)
	w.WriteSigned(-0x10)
	require.Equal(t, []byte{0x05, 0x70}, w.Bytes())
}

func TestWithLengthPrefixEmptyPayload(t *testing.T) {
	w := bytestream.New()
	bytestream.WithLengthPrefix(w, func(sub *bytestream.ByteWriter) {})
	require.Equal(t, []byte{0x00}, w.Bytes())
}

func TestWithLengthPrefixLaw(t *testing.T) {
	// After leaving a scoped length-prefix over a payload of n bytes, the
	// enclosing stream grows by uleb_len(n)+n bytes, the last n of which
	// are the payload verbatim.
	w := bytestream.New()
	w.WriteU8(0xAA) // something already in the enclosing stream
	before := w.BytesWritten()

	payload := make([]byte, 200) // forces a 2-byte ULEB128 length
	for i := range payload {
		payload[i] = byte(i)
	}

	bytestream.WithLengthPrefix(w, func(sub *bytestream.ByteWriter) {
		sub.WriteBytes(payload)
	})

	got := w.Bytes()
	require.Equal(t, before+2+len(payload), len(got))
	require.Equal(t, []byte{0xC8, 0x01}, got[before:before+2])
	require.Equal(t, payload, got[before+2:])
}

func TestWithLengthPrefixNesting(t *testing.T) {
	w := bytestream.New()
	bytestream.WithLengthPrefix(w, func(outer *bytestream.ByteWriter) {
		outer.WriteU8(0x01)
		bytestream.WithLengthPrefix(outer, func(inner *bytestream.ByteWriter) {
			inner.WriteU8(0x02)
			inner.WriteU8(0x03)
		})
	})
	// outer payload: 0x01, then a length-prefixed [0x02,0x03] -> 0x01 0x02 0x02 0x03
	// whole thing wrapped again: length 4, then that payload.
	require.Equal(t, []byte{0x04, 0x01, 0x02, 0x02, 0x03}, w.Bytes())
}

func TestEmptyModulePrefixBytes(t *testing.T) {
	// Magic + version, the fixed 8-byte prefix every emitted module starts with.
	w := bytestream.New()
	w.WriteBytes([]byte{0x00, 'a', 's', 'm'})
	bytestream.WriteFixed(w, uint32(1))
	require.Equal(t, []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}, w.Bytes())
}
