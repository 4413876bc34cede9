package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minetools/nbtkit/nbt"
)

func mustEncode(t *testing.T, tag nbt.Tag) []byte {
	t.Helper()
	data, err := nbt.EncodePayload(tag)
	require.NoError(t, err)
	return data
}

func TestScalarWireFormat(t *testing.T) {
	require.Equal(t, []byte{0xFF}, mustEncode(t, &nbt.Byte{Value: -1}))
	require.Equal(t, []byte{0xFF, 0xFE}, mustEncode(t, &nbt.Short{Value: -2}))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, mustEncode(t, &nbt.Int{Value: 1}))
	require.Equal(t,
		[]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A},
		mustEncode(t, &nbt.Long{Value: 42}))
	// 1.0f = 0x3F800000
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, mustEncode(t, &nbt.Float{Value: 1.0}))
	// 1.0d = 0x3FF0000000000000
	require.Equal(t,
		[]byte{0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		mustEncode(t, &nbt.Double{Value: 1.0}))
}

func TestStringWireFormat(t *testing.T) {
	data := mustEncode(t, &nbt.String{Value: "hi"})
	require.Equal(t, []byte{0x00, 0x02, 'h', 'i'}, data)

	// The prefix counts UTF-8 bytes, not characters.
	data = mustEncode(t, &nbt.String{Value: "é"})
	require.Equal(t, []byte{0x00, 0x02, 0xC3, 0xA9}, data)

	tag, off, err := nbt.DecodePayload(data, 0, nbt.TypeString)
	require.NoError(t, err)
	require.Equal(t, 4, off)
	require.Equal(t, "é", tag.(*nbt.String).Value)
}

func TestStringTooLongOnEncode(t *testing.T) {
	long := make([]byte, 65536)
	for i := range long {
		long[i] = 'a'
	}
	_, err := nbt.EncodePayload(&nbt.String{Value: string(long)})
	require.ErrorIs(t, err, nbt.ErrStringTooLong)
}

func TestTruncatedStringDecode(t *testing.T) {
	// Declared length 10, only 3 payload bytes present.
	data := []byte{0x00, 0x0A, 'a', 'b', 'c'}
	_, _, err := nbt.DecodePayload(data, 0, nbt.TypeString)
	require.ErrorIs(t, err, nbt.ErrTruncated)

	// Length field itself cut off.
	_, _, err = nbt.DecodePayload([]byte{0x00}, 0, nbt.TypeString)
	require.ErrorIs(t, err, nbt.ErrTruncated)
}

func TestInvalidUTF8StringDecode(t *testing.T) {
	data := []byte{0x00, 0x02, 0xFF, 0xFE}
	_, _, err := nbt.DecodePayload(data, 0, nbt.TypeString)
	require.ErrorIs(t, err, nbt.ErrInvalidString)
}

func TestTruncatedScalarDecode(t *testing.T) {
	_, _, err := nbt.DecodePayload([]byte{0x01, 0x02}, 0, nbt.TypeInt)
	require.ErrorIs(t, err, nbt.ErrTruncated)

	_, _, err = nbt.DecodePayload(nil, 0, nbt.TypeByte)
	require.ErrorIs(t, err, nbt.ErrTruncated)

	_, _, err = nbt.DecodePayload([]byte{1, 2, 3, 4, 5, 6, 7}, 0, nbt.TypeDouble)
	require.ErrorIs(t, err, nbt.ErrTruncated)
}

func TestArrayWireFormat(t *testing.T) {
	data := mustEncode(t, &nbt.ByteArray{Elems: []int8{1, -1}})
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x02, 0x01, 0xFF}, data)

	tag, off, err := nbt.DecodePayload(data, 0, nbt.TypeByteArray)
	require.NoError(t, err)
	require.Equal(t, len(data), off)
	require.Equal(t, []int8{1, -1}, tag.(*nbt.ByteArray).Elems)

	data = mustEncode(t, &nbt.IntArray{Elems: []int32{1, -1}})
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x01,
		0xFF, 0xFF, 0xFF, 0xFF,
	}, data)

	data = mustEncode(t, &nbt.LongArray{Elems: []int64{256}})
	tag, off, err = nbt.DecodePayload(data, 0, nbt.TypeLongArray)
	require.NoError(t, err)
	require.Equal(t, len(data), off)
	require.Equal(t, []int64{256}, tag.(*nbt.LongArray).Elems)
}

func TestNegativeArrayCount(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF} // count = -1
	_, _, err := nbt.DecodePayload(data, 0, nbt.TypeByteArray)
	require.ErrorIs(t, err, nbt.ErrNegativeLength)
}

func TestOversizedArrayCount(t *testing.T) {
	// Declared 2^30 ints in an 8-byte buffer: must fail before allocating.
	data := []byte{0x40, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04}
	_, _, err := nbt.DecodePayload(data, 0, nbt.TypeIntArray)
	require.ErrorIs(t, err, nbt.ErrTruncated)
}

func TestEmptyListWireFormat(t *testing.T) {
	// Empty list writes End as element type plus a zero count, even when an
	// element type was established and the list later emptied.
	l := nbt.NewListOf(nbt.TypeInt)
	data := mustEncode(t, l)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00}, data)

	tag, off, err := nbt.DecodePayload(data, 0, nbt.TypeList)
	require.NoError(t, err)
	require.Equal(t, 5, off)
	require.Equal(t, nbt.TypeEnd, tag.(*nbt.List).ElemType())
	require.Equal(t, 0, tag.(*nbt.List).Len())
}

func TestListWireFormat(t *testing.T) {
	l := nbt.NewList()
	require.NoError(t, l.Append(&nbt.Short{Value: 1}))
	require.NoError(t, l.Append(&nbt.Short{Value: 2}))

	data := mustEncode(t, l)
	require.Equal(t, []byte{
		0x02,                   // element type: Short
		0x00, 0x00, 0x00, 0x02, // count
		0x00, 0x01,
		0x00, 0x02,
	}, data)

	tag, off, err := nbt.DecodePayload(data, 0, nbt.TypeList)
	require.NoError(t, err)
	require.Equal(t, len(data), off)
	require.True(t, nbt.Equal(l, tag))
}

func TestListUnknownElementType(t *testing.T) {
	data := []byte{0x0D, 0x00, 0x00, 0x00, 0x01}
	_, _, err := nbt.DecodePayload(data, 0, nbt.TypeList)
	require.ErrorIs(t, err, nbt.ErrUnknownTag)
}

func TestListNegativeCount(t *testing.T) {
	data := []byte{0x03, 0xFF, 0xFF, 0xFF, 0xFF}
	_, _, err := nbt.DecodePayload(data, 0, nbt.TypeList)
	require.ErrorIs(t, err, nbt.ErrNegativeLength)
}

func TestCompoundWireOrder(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("b", &nbt.Byte{Value: 1})
	c.Set("a", &nbt.Byte{Value: 2})

	data := mustEncode(t, c)
	require.Equal(t, []byte{
		0x01, 0x00, 0x01, 'b', 0x01, // "b" first: insertion order, not sorted
		0x01, 0x00, 0x01, 'a', 0x02,
		0x00, // End terminator
	}, data)
}

func TestCompoundMissingTerminator(t *testing.T) {
	// One full entry, then the buffer ends without an End byte.
	data := []byte{0x01, 0x00, 0x01, 'x', 0x05}
	_, _, err := nbt.DecodeCompound(data, 0)
	require.ErrorIs(t, err, nbt.ErrTruncated)
}

func TestCompoundUnknownEntryType(t *testing.T) {
	data := []byte{0x42, 0x00, 0x01, 'x', 0x00}
	_, _, err := nbt.DecodeCompound(data, 0)
	require.ErrorIs(t, err, nbt.ErrUnknownTag)
}

func buildDeepTree(t *testing.T) *nbt.Compound {
	t.Helper()

	pos := nbt.NewList()
	for _, v := range []float64{0.5, 64, -12.25} {
		require.NoError(t, pos.Append(&nbt.Double{Value: v}))
	}

	inventory := nbt.NewList()
	for i, id := range []string{"minecraft:stone", "minecraft:dirt"} {
		item := nbt.NewCompound()
		item.Set("id", &nbt.String{Value: id})
		item.Set("Count", &nbt.Byte{Value: int8(i + 1)})
		item.Set("Slot", &nbt.Byte{Value: int8(i)})
		require.NoError(t, inventory.Append(item))
	}

	player := nbt.NewCompound()
	player.Set("Pos", pos)
	player.Set("Inventory", inventory)
	player.Set("Health", &nbt.Float{Value: 19.5})
	player.Set("XpTotal", &nbt.Int{Value: 1337})

	data := nbt.NewCompound()
	data.Set("LevelName", &nbt.String{Value: "world"})
	data.Set("Time", &nbt.Long{Value: 1234567890123})
	data.Set("hardcore", &nbt.Byte{Value: 0})
	data.Set("Player", player)
	data.Set("BiomeIDs", &nbt.IntArray{Elems: []int32{-1, 0, 127}})
	data.Set("Heightmap", &nbt.LongArray{Elems: []int64{1 << 40, -9}})
	data.Set("ChunkMask", &nbt.ByteArray{Elems: []int8{0, -128, 127}})

	root := nbt.NewCompound()
	root.Set("Data", data)
	return root
}

func TestRoundTrip(t *testing.T) {
	root := buildDeepTree(t)

	data := mustEncode(t, root)
	decoded, off, err := nbt.DecodeCompound(data, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), off, "decode must consume exactly the encoded bytes")
	require.True(t, nbt.Equal(root, decoded))

	// And a second trip is byte-identical.
	again := mustEncode(t, decoded)
	require.Equal(t, data, again)
}

func TestDecodeAtOffset(t *testing.T) {
	// Decoding threads offsets through return values, so a payload embedded
	// mid-buffer decodes without slicing.
	prefix := []byte{0xDE, 0xAD}
	payload := mustEncode(t, &nbt.Int{Value: 7})
	data := append(append([]byte{}, prefix...), payload...)

	tag, off, err := nbt.DecodePayload(data, 2, nbt.TypeInt)
	require.NoError(t, err)
	require.Equal(t, 6, off)
	require.Equal(t, int32(7), tag.(*nbt.Int).Value)
}

func TestDecodeUnknownType(t *testing.T) {
	_, _, err := nbt.DecodePayload([]byte{0x00}, 0, nbt.TagType(13))
	require.ErrorIs(t, err, nbt.ErrUnknownTag)
}
