package nbt

import (
	"fmt"

	"github.com/minetools/nbtkit/internal/format"
)

// TagType identifies one of the thirteen NBT tag variants. The numeric
// values match the single ID byte used on the wire.
type TagType byte

const (
	TypeEnd       TagType = format.TagEnd
	TypeByte      TagType = format.TagByte
	TypeShort     TagType = format.TagShort
	TypeInt       TagType = format.TagInt
	TypeLong      TagType = format.TagLong
	TypeFloat     TagType = format.TagFloat
	TypeDouble    TagType = format.TagDouble
	TypeByteArray TagType = format.TagByteArray
	TypeString    TagType = format.TagString
	TypeList      TagType = format.TagList
	TypeCompound  TagType = format.TagCompound
	TypeIntArray  TagType = format.TagIntArray
	TypeLongArray TagType = format.TagLongArray
)

// String implements the Stringer interface for TagType.
func (t TagType) String() string {
	switch t {
	case TypeEnd:
		return "TAG_End"
	case TypeByte:
		return "TAG_Byte"
	case TypeShort:
		return "TAG_Short"
	case TypeInt:
		return "TAG_Int"
	case TypeLong:
		return "TAG_Long"
	case TypeFloat:
		return "TAG_Float"
	case TypeDouble:
		return "TAG_Double"
	case TypeByteArray:
		return "TAG_Byte_Array"
	case TypeString:
		return "TAG_String"
	case TypeList:
		return "TAG_List"
	case TypeCompound:
		return "TAG_Compound"
	case TypeIntArray:
		return "TAG_Int_Array"
	case TypeLongArray:
		return "TAG_Long_Array"
	default:
		return fmt.Sprintf("UNKNOWN_TAG_%d", byte(t))
	}
}

// Valid reports whether t is a defined tag type, End included.
func (t TagType) Valid() bool {
	return t <= format.TagMax
}

// IsScalar reports whether t carries a single numeric or string payload.
func (t TagType) IsScalar() bool {
	switch t {
	case TypeByte, TypeShort, TypeInt, TypeLong, TypeFloat, TypeDouble, TypeString:
		return true
	}
	return false
}

// IsArray reports whether t is one of the fixed-width array variants.
func (t TagType) IsArray() bool {
	switch t {
	case TypeByteArray, TypeIntArray, TypeLongArray:
		return true
	}
	return false
}

// IsContainer reports whether t holds child tags (List or Compound).
func (t TagType) IsContainer() bool {
	return t == TypeList || t == TypeCompound
}

// Tag is the closed set of NBT tag variants. Exactly one concrete type
// exists per variant; the unexported marker keeps the set sealed so decode
// dispatch over the wire's ID byte stays exhaustive.
//
// A tag is exclusively owned by its parent Compound or List. Deleting a
// compound key or list element discards that subtree; there is no aliasing
// between trees.
type Tag interface {
	// Type returns the variant of this tag.
	Type() TagType

	isTag()
}

// Byte is an 8-bit signed integer tag.
type Byte struct{ Value int8 }

// Short is a 16-bit signed integer tag.
type Short struct{ Value int16 }

// Int is a 32-bit signed integer tag.
type Int struct{ Value int32 }

// Long is a 64-bit signed integer tag.
type Long struct{ Value int64 }

// Float is a 32-bit IEEE-754 tag.
type Float struct{ Value float32 }

// Double is a 64-bit IEEE-754 tag.
type Double struct{ Value float64 }

// String is a UTF-8 text tag. The encoded form is limited to 65535 bytes.
type String struct{ Value string }

// ByteArray is an ordered sequence of 8-bit signed integers.
type ByteArray struct{ Elems []int8 }

// IntArray is an ordered sequence of 32-bit signed integers.
type IntArray struct{ Elems []int32 }

// LongArray is an ordered sequence of 64-bit signed integers.
type LongArray struct{ Elems []int64 }

func (*Byte) Type() TagType      { return TypeByte }
func (*Short) Type() TagType     { return TypeShort }
func (*Int) Type() TagType       { return TypeInt }
func (*Long) Type() TagType      { return TypeLong }
func (*Float) Type() TagType     { return TypeFloat }
func (*Double) Type() TagType    { return TypeDouble }
func (*String) Type() TagType    { return TypeString }
func (*ByteArray) Type() TagType { return TypeByteArray }
func (*IntArray) Type() TagType  { return TypeIntArray }
func (*LongArray) Type() TagType { return TypeLongArray }

func (*Byte) isTag()      {}
func (*Short) isTag()     {}
func (*Int) isTag()       {}
func (*Long) isTag()      {}
func (*Float) isTag()     {}
func (*Double) isTag()    {}
func (*String) isTag()    {}
func (*ByteArray) isTag() {}
func (*IntArray) isTag()  {}
func (*LongArray) isTag() {}

// ByteFromInt builds a Byte tag from arbitrary integer input by masking to
// the low 8 bits and reinterpreting as signed, matching how editing
// surfaces accept unsigned-looking input (300 becomes 44, 200 becomes -56).
func ByteFromInt(v int) *Byte {
	return &Byte{Value: int8(v & 0xFF)}
}

// ShortFromInt builds a Short tag by masking to the low 16 bits and
// reinterpreting as signed.
func ShortFromInt(v int) *Short {
	return &Short{Value: int16(v & 0xFFFF)}
}

// Append adds v to the array. Array appends never fail: the element type is
// fixed by the array variant itself.
func (a *ByteArray) Append(v int8) { a.Elems = append(a.Elems, v) }

// Append adds v to the array.
func (a *IntArray) Append(v int32) { a.Elems = append(a.Elems, v) }

// Append adds v to the array.
func (a *LongArray) Append(v int64) { a.Elems = append(a.Elems, v) }

// Len returns the element count.
func (a *ByteArray) Len() int { return len(a.Elems) }

// Len returns the element count.
func (a *IntArray) Len() int { return len(a.Elems) }

// Len returns the element count.
func (a *LongArray) Len() int { return len(a.Elems) }

// CanEdit reports whether t's payload is directly editable as a scalar or
// array (everything except List and Compound).
func CanEdit(t Tag) bool {
	typ := t.Type()
	return typ.IsScalar() || typ.IsArray()
}

// CanAddChildren reports whether t accepts appended or inserted children.
func CanAddChildren(t Tag) bool {
	return t.Type().IsContainer() || t.Type().IsArray()
}
