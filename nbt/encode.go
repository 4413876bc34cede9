package nbt

import (
	"fmt"

	"github.com/minetools/nbtkit/internal/buf"
	"github.com/minetools/nbtkit/internal/format"
)

// EncodePayload serializes t's payload (no ID byte, no name) into a fresh
// buffer. Encoding never mutates the tag. The one encode-time failure is a
// string longer than its 16-bit length prefix allows.
func EncodePayload(t Tag) ([]byte, error) {
	return AppendPayload(nil, t)
}

// AppendPayload appends t's payload to dst and returns the extended slice.
func AppendPayload(dst []byte, t Tag) ([]byte, error) {
	switch x := t.(type) {
	case *Byte:
		return append(dst, byte(x.Value)), nil
	case *Short:
		return buf.AppendI16BE(dst, x.Value), nil
	case *Int:
		return buf.AppendI32BE(dst, x.Value), nil
	case *Long:
		return buf.AppendI64BE(dst, x.Value), nil
	case *Float:
		return buf.AppendF32BE(dst, x.Value), nil
	case *Double:
		return buf.AppendF64BE(dst, x.Value), nil
	case *String:
		return appendString(dst, x.Value)
	case *ByteArray:
		dst = buf.AppendI32BE(dst, int32(len(x.Elems)))
		for _, v := range x.Elems {
			dst = append(dst, byte(v))
		}
		return dst, nil
	case *IntArray:
		dst = buf.AppendI32BE(dst, int32(len(x.Elems)))
		for _, v := range x.Elems {
			dst = buf.AppendI32BE(dst, v)
		}
		return dst, nil
	case *LongArray:
		dst = buf.AppendI32BE(dst, int32(len(x.Elems)))
		for _, v := range x.Elems {
			dst = buf.AppendI64BE(dst, v)
		}
		return dst, nil
	case *List:
		return appendList(dst, x)
	case *Compound:
		return appendCompound(dst, x)
	}
	return nil, fmt.Errorf("nbt: cannot encode tag type %s", t.Type())
}

// appendString writes the 16-bit unsigned byte-count prefix followed by the
// UTF-8 bytes of s.
func appendString(dst []byte, s string) ([]byte, error) {
	if len(s) > format.MaxStringLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	dst = buf.AppendU16BE(dst, uint16(len(s)))
	return append(dst, s...), nil
}

// appendList writes the element-type ID, the signed 32-bit count, then each
// element's payload in order. An empty list writes the End ID and a zero
// count regardless of any established element type.
func appendList(dst []byte, l *List) ([]byte, error) {
	if len(l.elems) == 0 {
		dst = append(dst, format.TagEnd)
		return buf.AppendI32BE(dst, 0), nil
	}
	dst = append(dst, byte(l.elem))
	dst = buf.AppendI32BE(dst, int32(len(l.elems)))
	for i, t := range l.elems {
		var err error
		dst, err = AppendPayload(dst, t)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
	}
	return dst, nil
}

// appendCompound writes each entry in insertion order as ID byte, name
// string, payload, then the single End terminator byte.
func appendCompound(dst []byte, c *Compound) ([]byte, error) {
	for _, key := range c.keys {
		t := c.entries[key]
		var err error
		dst, err = appendNamed(dst, key, t)
		if err != nil {
			return nil, fmt.Errorf("compound entry %q: %w", key, err)
		}
	}
	return append(dst, format.TagEnd), nil
}

// appendNamed writes a full named-tag record: ID byte, name, payload.
func appendNamed(dst []byte, name string, t Tag) ([]byte, error) {
	dst = append(dst, byte(t.Type()))
	dst, err := appendString(dst, name)
	if err != nil {
		return nil, err
	}
	return AppendPayload(dst, t)
}
