// Package leb128 encodes and decodes LEB128 / SLEB128 variable-length
// integers, the encoding Wasm uses for every integer field that isn't
// declared "byte" or "fixed".
package leb128

import (
	"errors"
	"io"
)

// ErrOverflow is returned when a value cannot be represented in 10 bytes,
// the maximum length of a LEB128/SLEB128 encoding of a 64-bit integer.
var ErrOverflow = errors.New("leb128: value overflows 64 bits")

const maxBytes = 10

// EncodeU64 returns the ULEB128 encoding of v.
func EncodeU64(v uint64) []byte {
	var buf []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf = append(buf, b)
		if v == 0 {
			break
		}
	}
	return buf
}

// EncodeS64 returns the SLEB128 encoding of v.
func EncodeS64(v int64) []byte {
	var buf []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		signBitSet := b&0x40 != 0
		done := (v == 0 && !signBitSet) || (v == -1 && signBitSet)
		if !done {
			b |= 0x80
		}
		buf = append(buf, b)
		if done {
			break
		}
	}
	return buf
}

// DecodeU64 reads a ULEB128-encoded value one byte at a time from r,
// returning the decoded value and the number of bytes consumed. A reader
// that reports EOF before any byte is read is treated as "no value here"
// and returns (0, 0, nil) rather than an error.
func DecodeU64(r io.Reader) (uint64, int, error) {
	var result uint64
	var shift uint
	n := 0
	buf := make([]byte, 1)
	for {
		if _, err := r.Read(buf); err != nil {
			if errors.Is(err, io.EOF) && n == 0 {
				return 0, 0, nil
			}
			return 0, n, err
		}
		n++
		b := buf[0]
		result |= uint64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			return result, n, nil
		}
		if n == maxBytes {
			return 0, n, ErrOverflow
		}
	}
}

// DecodeS64 reads an SLEB128-encoded value one byte at a time from r,
// returning the decoded value and the number of bytes consumed. As with
// DecodeU64, an immediate EOF is treated as "no value here".
func DecodeS64(r io.Reader) (int64, int, error) {
	var result int64
	var shift uint
	n := 0
	buf := make([]byte, 1)
	for {
		if _, err := r.Read(buf); err != nil {
			if errors.Is(err, io.EOF) && n == 0 {
				return 0, 0, nil
			}
			return 0, n, err
		}
		n++
		b := buf[0]
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return result, n, nil
		}
		if n == maxBytes {
			return 0, n, ErrOverflow
		}
	}
}
