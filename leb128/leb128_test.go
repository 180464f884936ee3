package leb128_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/andrz-wasm/gcbuilder/leb128"
	"github.com/stretchr/testify/require"
)

type errorReader struct{}

func (er *errorReader) Read(_ []byte) (int, error) {
	return 0, fmt.Errorf("test error")
}

func TestUnsigned(t *testing.T) {
	t.Run("simple low-range cases", func(t *testing.T) {
		for ndx := uint64(0); ndx < 512; ndx++ {
			buf := leb128.EncodeU64(ndx)
			var expectedLen int
			require.NotEmpty(t, buf)
			if ndx >= 384 { // [384,512)
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
				require.Equal(t, byte(3), buf[1])
			} else if ndx >= 256 { // [256,384)
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx-128), buf[0])
				require.Equal(t, byte(2), buf[1])
			} else if ndx >= 128 { // [128,256)
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
				require.Equal(t, byte(1), buf[1])
			} else { // [0,128)
				expectedLen = 1
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
			}

			res, n, err := leb128.DecodeU64(bytes.NewBuffer(buf))
			require.NoError(t, err)
			require.Equal(t, expectedLen, n)
			require.Equal(t, ndx, res)
		}
	})

	t.Run("boundary values 0 127 128 16383 16384", func(t *testing.T) {
		cases := []struct {
			v    uint64
			want []byte
		}{
			{0, []byte{0x00}},
			{127, []byte{0x7f}},
			{128, []byte{0x80, 0x01}},
			{16383, []byte{0xff, 0x7f}},
			{16384, []byte{0x80, 0x80, 0x01}},
		}
		for _, c := range cases {
			buf := leb128.EncodeU64(c.v)
			require.Equal(t, c.want, buf)
			res, n, err := leb128.DecodeU64(bytes.NewBuffer(buf))
			require.NoError(t, err)
			require.Equal(t, len(c.want), n)
			require.Equal(t, c.v, res)
		}
	})

	t.Run("max uint64", func(t *testing.T) {
		expected := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}

		buf := leb128.EncodeU64(math.MaxUint64)
		require.Equal(t, expected, buf)

		res, n, err := leb128.DecodeU64(bytes.NewBuffer(buf))
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.Equal(t, uint64(math.MaxUint64), res)
	})

	t.Run("empty buffer", func(t *testing.T) {
		res, n, err := leb128.DecodeU64(bytes.NewBuffer([]byte{}))
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Zero(t, res)
	})

	t.Run("read error", func(t *testing.T) {
		res, n, err := leb128.DecodeU64(&errorReader{})
		require.Error(t, err)
		require.Equal(t, 0, n)
		require.Zero(t, res)
	})

	t.Run("ensure that we stop at the correct time", func(t *testing.T) {
		input := []byte{0x78, 0x10, 0xf, 0xa, 0xb, 0x90, 0x01, 0, 0xff, 0xff, 0xff}
		res, n, err := leb128.DecodeU64(bytes.NewBuffer(input))
		require.NoError(t, err)
		require.Equal(t, 1, n)
		require.Equal(t, uint64(120), res)
	})

	t.Run("restrict to 10 bytes (final bytes would overflow an 8 byte integer)", func(t *testing.T) {
		input := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x0}

		res, n, err := leb128.DecodeU64(bytes.NewBuffer(input))
		require.ErrorIs(t, err, leb128.ErrOverflow)
		require.Equal(t, 10, n)
		require.Equal(t, uint64(0), res)
	})
}

func TestSigned(t *testing.T) {
	t.Run("simple low-range positive cases", func(t *testing.T) {
		for ndx := int64(0); ndx < 512; ndx++ {
			buf := leb128.EncodeS64(ndx)
			require.NotEmpty(t, buf)
			var expectedLen int
			if ndx >= 384 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
				require.Equal(t, byte(3), buf[1])
			} else if ndx >= 256 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx+128), buf[0])
				require.Equal(t, byte(2), buf[1])
			} else if ndx >= 128 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
				require.Equal(t, byte(1), buf[1])
			} else if ndx >= 64 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx+128), buf[0])
				require.Equal(t, byte(0), buf[1])
			} else {
				expectedLen = 1
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
			}

			res, n, err := leb128.DecodeS64(bytes.NewBuffer(buf))
			require.NoError(t, err)
			require.Equal(t, expectedLen, n)
			require.Equal(t, ndx, res)
		}
	})

	t.Run("simple low-range negative cases", func(t *testing.T) {
		for ndx := int64(-512); ndx < 0; ndx++ {
			buf := leb128.EncodeS64(ndx)
			require.NotEmpty(t, buf)
			var expectedLen int
			if ndx < -384 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx+128), buf[0])
				require.Equal(t, byte(124), buf[1])
			} else if ndx < -256 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
				require.Equal(t, byte(125), buf[1])
			} else if ndx < -128 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx+128), buf[0])
				require.Equal(t, byte(126), buf[1])
			} else if ndx < -64 {
				expectedLen = 2
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx), buf[0])
				require.Equal(t, byte(127), buf[1])
			} else {
				expectedLen = 1
				require.Len(t, buf, expectedLen)
				require.Equal(t, byte(ndx+128), buf[0])
			}

			res, n, err := leb128.DecodeS64(bytes.NewBuffer(buf))
			require.NoError(t, err)
			require.Equal(t, expectedLen, n)
			require.Equal(t, ndx, res)
		}
	})

	t.Run("boundary values 0 -1 -64 63 64 -65", func(t *testing.T) {
		cases := []struct {
			v    int64
			want []byte
		}{
			{0, []byte{0x00}},
			{-1, []byte{0x7f}},
			{-64, []byte{0x40}},
			{63, []byte{0x3f}},
			{64, []byte{0xc0, 0x00}},
			{-65, []byte{0xbf, 0x7f}},
		}
		for _, c := range cases {
			buf := leb128.EncodeS64(c.v)
			require.Equal(t, c.want, buf, "encoding %d", c.v)
			res, n, err := leb128.DecodeS64(bytes.NewBuffer(buf))
			require.NoError(t, err)
			require.Equal(t, len(c.want), n)
			require.Equal(t, c.v, res)
		}
	})

	t.Run("negative Wasm GC heap type tag constants round-trip", func(t *testing.T) {
		for _, v := range []int64{-0x10, -0x11, -0x12, -0x13, -0x14, -0x15, -0x16, -0x17} {
			buf := leb128.EncodeS64(v)
			res, n, err := leb128.DecodeS64(bytes.NewBuffer(buf))
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.Equal(t, v, res)
			require.Len(t, buf, 1, "tag constant %d should fit in a single SLEB128 byte", v)
		}
	})

	t.Run("max int64", func(t *testing.T) {
		expected := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0}

		buf := leb128.EncodeS64(math.MaxInt64)
		require.Equal(t, expected, buf)

		res, n, err := leb128.DecodeS64(bytes.NewBuffer(buf))
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.Equal(t, int64(math.MaxInt64), res)
	})

	t.Run("min int64", func(t *testing.T) {
		expected := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}

		buf := leb128.EncodeS64(math.MinInt64)
		require.Equal(t, expected, buf)

		res, n, err := leb128.DecodeS64(bytes.NewBuffer(buf))
		require.NoError(t, err)
		require.Equal(t, 10, n)
		require.Equal(t, int64(math.MinInt64), res)
	})

	t.Run("empty buffer", func(t *testing.T) {
		res, n, err := leb128.DecodeS64(bytes.NewBuffer([]byte{}))
		require.NoError(t, err)
		require.Equal(t, 0, n)
		require.Zero(t, res)
	})

	t.Run("read error", func(t *testing.T) {
		res, n, err := leb128.DecodeS64(&errorReader{})
		require.Error(t, err)
		require.Equal(t, 0, n)
		require.Zero(t, res)
	})

	t.Run("restrict to 10 bytes (final bytes overflow an 8 byte integer)", func(t *testing.T) {
		input := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0xff}

		res, n, err := leb128.DecodeS64(bytes.NewBuffer(input))
		require.ErrorIs(t, err, leb128.ErrOverflow)
		require.Equal(t, 10, n)
		require.Equal(t, int64(0), res)
	})
}
