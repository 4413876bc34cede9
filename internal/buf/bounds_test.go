package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(1, 2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok)
}

func TestMulOverflowSafe(t *testing.T) {
	v, ok := MulOverflowSafe(3, 4)
	require.True(t, ok)
	require.Equal(t, 12, v)

	v, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	require.Equal(t, 0, v)

	_, ok = MulOverflowSafe(math.MaxInt/2, 3)
	require.False(t, ok)

	_, ok = MulOverflowSafe(-1, 4)
	require.False(t, ok)
}

func TestCheckCount(t *testing.T) {
	end, err := CheckCount(100, 10, 10, 4)
	require.NoError(t, err)
	require.Equal(t, 50, end)

	_, err = CheckCount(100, 10, -1, 4)
	require.Error(t, err)

	_, err = CheckCount(100, -1, 10, 4)
	require.Error(t, err)

	// count * elemSize past the buffer end
	_, err = CheckCount(100, 10, 100, 4)
	require.Error(t, err)

	// overflowing product must not wrap into a small end offset
	_, err = CheckCount(100, 0, math.MaxInt, 8)
	require.Error(t, err)
}

func TestSliceAndHas(t *testing.T) {
	b := []byte{1, 2, 3, 4}

	s, ok := Slice(b, 1, 2)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, s)

	_, ok = Slice(b, 3, 2)
	require.False(t, ok)

	_, ok = Slice(b, -1, 1)
	require.False(t, ok)

	require.True(t, Has(b, 0, 4))
	require.False(t, Has(b, 0, 5))
	require.True(t, Has(b, 4, 0))
}
