package nbt

import (
	"fmt"
	"unicode/utf8"

	"github.com/minetools/nbtkit/internal/buf"
	"github.com/minetools/nbtkit/internal/format"
)

// DecodePayload decodes the payload of a tag of the given type starting at
// off and returns the tag plus the offset of the first byte after it. The
// offset is threaded through return values; no routine holds cursor state.
//
// Decoding consumes exactly the bytes the payload declares and never reads
// past a length field. Any shortfall fails with ErrTruncated, a negative
// count with ErrNegativeLength, and an out-of-range type with
// ErrUnknownTag. A failed decode never returns a partial tag.
func DecodePayload(data []byte, off int, typ TagType) (Tag, int, error) {
	switch typ {
	case TypeByte:
		if !buf.Has(data, off, format.ByteSize) {
			return nil, 0, fmt.Errorf("byte at %d: %w", off, ErrTruncated)
		}
		return &Byte{Value: int8(data[off])}, off + format.ByteSize, nil

	case TypeShort:
		if !buf.Has(data, off, format.ShortSize) {
			return nil, 0, fmt.Errorf("short at %d: %w", off, ErrTruncated)
		}
		return &Short{Value: buf.I16BE(data[off:])}, off + format.ShortSize, nil

	case TypeInt:
		if !buf.Has(data, off, format.IntSize) {
			return nil, 0, fmt.Errorf("int at %d: %w", off, ErrTruncated)
		}
		return &Int{Value: buf.I32BE(data[off:])}, off + format.IntSize, nil

	case TypeLong:
		if !buf.Has(data, off, format.LongSize) {
			return nil, 0, fmt.Errorf("long at %d: %w", off, ErrTruncated)
		}
		return &Long{Value: buf.I64BE(data[off:])}, off + format.LongSize, nil

	case TypeFloat:
		if !buf.Has(data, off, format.FloatSize) {
			return nil, 0, fmt.Errorf("float at %d: %w", off, ErrTruncated)
		}
		return &Float{Value: buf.F32BE(data[off:])}, off + format.FloatSize, nil

	case TypeDouble:
		if !buf.Has(data, off, format.DoubleSize) {
			return nil, 0, fmt.Errorf("double at %d: %w", off, ErrTruncated)
		}
		return &Double{Value: buf.F64BE(data[off:])}, off + format.DoubleSize, nil

	case TypeString:
		s, next, err := decodeString(data, off)
		if err != nil {
			return nil, 0, err
		}
		return &String{Value: s}, next, nil

	case TypeByteArray:
		return decodeByteArray(data, off)

	case TypeIntArray:
		return decodeIntArray(data, off)

	case TypeLongArray:
		return decodeLongArray(data, off)

	case TypeList:
		return decodeList(data, off)

	case TypeCompound:
		return DecodeCompound(data, off)
	}
	return nil, 0, fmt.Errorf("tag id %d at %d: %w", byte(typ), off, ErrUnknownTag)
}

// decodeString reads a 16-bit unsigned byte-count prefix followed by that
// many UTF-8 bytes.
func decodeString(data []byte, off int) (string, int, error) {
	if !buf.Has(data, off, format.StringLenSize) {
		return "", 0, fmt.Errorf("string length at %d: %w", off, ErrTruncated)
	}
	n := int(buf.U16BE(data[off:]))
	off += format.StringLenSize

	raw, ok := buf.Slice(data, off, n)
	if !ok {
		return "", 0, fmt.Errorf("string of %d bytes at %d: %w", n, off, ErrTruncated)
	}
	if !utf8.Valid(raw) {
		return "", 0, fmt.Errorf("string at %d: %w", off, ErrInvalidString)
	}
	return string(raw), off + n, nil
}

// decodeArrayCount reads the signed 32-bit element-count prefix and
// validates that count elements of elemSize bytes remain in the buffer,
// returning the count and the offset of the first element.
func decodeArrayCount(data []byte, off, elemSize int) (int, int, error) {
	if !buf.Has(data, off, format.ArrayLenSize) {
		return 0, 0, fmt.Errorf("array length at %d: %w", off, ErrTruncated)
	}
	n := int(buf.I32BE(data[off:]))
	off += format.ArrayLenSize

	if n < 0 {
		return 0, 0, fmt.Errorf("array length %d at %d: %w", n, off, ErrNegativeLength)
	}
	if _, err := buf.CheckCount(len(data), off, n, elemSize); err != nil {
		return 0, 0, fmt.Errorf("array of %d*%d bytes at %d: %w", n, elemSize, off, ErrTruncated)
	}
	return n, off, nil
}

func decodeByteArray(data []byte, off int) (Tag, int, error) {
	n, off, err := decodeArrayCount(data, off, format.ByteSize)
	if err != nil {
		return nil, 0, err
	}
	elems := make([]int8, n)
	for i := 0; i < n; i++ {
		elems[i] = int8(data[off+i])
	}
	return &ByteArray{Elems: elems}, off + n, nil
}

func decodeIntArray(data []byte, off int) (Tag, int, error) {
	n, off, err := decodeArrayCount(data, off, format.IntSize)
	if err != nil {
		return nil, 0, err
	}
	elems := make([]int32, n)
	for i := 0; i < n; i++ {
		elems[i] = buf.I32BE(data[off+i*format.IntSize:])
	}
	return &IntArray{Elems: elems}, off + n*format.IntSize, nil
}

func decodeLongArray(data []byte, off int) (Tag, int, error) {
	n, off, err := decodeArrayCount(data, off, format.LongSize)
	if err != nil {
		return nil, 0, err
	}
	elems := make([]int64, n)
	for i := 0; i < n; i++ {
		elems[i] = buf.I64BE(data[off+i*format.LongSize:])
	}
	return &LongArray{Elems: elems}, off + n*format.LongSize, nil
}

// decodeList reads the element-type ID byte and the 32-bit count, then
// exactly count elements of that type. An End type or zero count yields an
// empty list with no established element type.
func decodeList(data []byte, off int) (Tag, int, error) {
	if !buf.Has(data, off, format.TagIDSize) {
		return nil, 0, fmt.Errorf("list element type at %d: %w", off, ErrTruncated)
	}
	elem := TagType(data[off])
	off += format.TagIDSize

	if !elem.Valid() {
		return nil, 0, fmt.Errorf("list element id %d at %d: %w", byte(elem), off-1, ErrUnknownTag)
	}

	if !buf.Has(data, off, format.ArrayLenSize) {
		return nil, 0, fmt.Errorf("list length at %d: %w", off, ErrTruncated)
	}
	n := int(buf.I32BE(data[off:]))
	off += format.ArrayLenSize

	if n < 0 {
		return nil, 0, fmt.Errorf("list length %d at %d: %w", n, off, ErrNegativeLength)
	}
	if elem == TypeEnd || n == 0 {
		return NewList(), off, nil
	}

	l := NewListOf(elem)
	for i := 0; i < n; i++ {
		t, next, err := DecodePayload(data, off, elem)
		if err != nil {
			return nil, 0, fmt.Errorf("list element %d: %w", i, err)
		}
		l.elems = append(l.elems, t)
		off = next
	}
	return l, off, nil
}

// DecodeCompound decodes a compound body starting at off: a sequence of
// (id byte, name string, payload) entries terminated by a single End byte.
// The End byte is the only boundary marker; there is no entry count.
// Entries are recorded in read order, which Compound preserves.
func DecodeCompound(data []byte, off int) (*Compound, int, error) {
	c := NewCompound()
	for {
		if !buf.Has(data, off, format.TagIDSize) {
			return nil, 0, fmt.Errorf("compound entry id at %d: %w", off, ErrTruncated)
		}
		id := TagType(data[off])
		off += format.TagIDSize

		if id == TypeEnd {
			return c, off, nil
		}
		if !id.Valid() {
			return nil, 0, fmt.Errorf("compound entry id %d at %d: %w", byte(id), off-1, ErrUnknownTag)
		}

		name, next, err := decodeString(data, off)
		if err != nil {
			return nil, 0, fmt.Errorf("compound entry name: %w", err)
		}
		off = next

		t, next, err := DecodePayload(data, off, id)
		if err != nil {
			return nil, 0, fmt.Errorf("compound entry %q: %w", name, err)
		}
		c.Set(name, t)
		off = next
	}
}
