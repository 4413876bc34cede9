package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadersBigEndian(t *testing.T) {
	b := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}

	require.Equal(t, uint8(0x12), U8(b))
	require.Equal(t, uint16(0x1234), U16BE(b))
	require.Equal(t, int16(0x1234), I16BE(b))
	require.Equal(t, uint32(0x12345678), U32BE(b))
	require.Equal(t, int32(0x12345678), I32BE(b))
	require.Equal(t, uint64(0x123456789ABCDEF0), U64BE(b))
	require.Equal(t, int64(0x123456789ABCDEF0), I64BE(b))
}

func TestReadersShortBuffer(t *testing.T) {
	require.Equal(t, uint8(0), U8(nil))
	require.Equal(t, uint16(0), U16BE([]byte{0x01}))
	require.Equal(t, uint32(0), U32BE([]byte{0x01, 0x02, 0x03}))
	require.Equal(t, uint64(0), U64BE([]byte{0x01, 0x02, 0x03, 0x04}))
}

func TestReadersNegative(t *testing.T) {
	require.Equal(t, int16(-1), I16BE([]byte{0xFF, 0xFF}))
	require.Equal(t, int32(-1), I32BE([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.Equal(t, int64(-2), I64BE([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}))
}

func TestAppendRoundTrip(t *testing.T) {
	b := AppendI16BE(nil, -12345)
	require.Equal(t, int16(-12345), I16BE(b))

	b = AppendI32BE(nil, -123456789)
	require.Equal(t, int32(-123456789), I32BE(b))

	b = AppendI64BE(nil, -1234567890123456789)
	require.Equal(t, int64(-1234567890123456789), I64BE(b))

	b = AppendU16BE(nil, 0xFFFF)
	require.Equal(t, uint16(0xFFFF), U16BE(b))
}

func TestFloatRoundTrip(t *testing.T) {
	b := AppendF32BE(nil, 3.14)
	require.Equal(t, float32(3.14), F32BE(b))

	b = AppendF64BE(nil, -2.718281828459045)
	require.Equal(t, -2.718281828459045, F64BE(b))
}

func TestFloatBitExact(t *testing.T) {
	// NaN payload bits must survive even though NaN != NaN.
	bits := uint64(0x7FF8_0000_0000_0001)
	b := AppendF64BE(nil, math.Float64frombits(bits))
	require.Equal(t, bits, math.Float64bits(F64BE(b)))
}
