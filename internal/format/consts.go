// Package format houses the low-level constants and sentinels for the NBT
// (Named Binary Tag) wire format. The goal is to keep the byte-level layout
// knowledge in one place, independent from the public API, so higher-level
// packages can orchestrate the data in a more ergonomic form.
//
// All multi-byte fields are big-endian. Integers are two's-complement,
// floats are IEEE-754.
package format

// Tag type IDs as they appear on the wire. The single ID byte precedes every
// named tag inside a compound and declares the element type of a list.
const (
	TagEnd       = 0x00 // compound terminator / empty-list marker, never a value
	TagByte      = 0x01
	TagShort     = 0x02
	TagInt       = 0x03
	TagLong      = 0x04
	TagFloat     = 0x05
	TagDouble    = 0x06
	TagByteArray = 0x07
	TagString    = 0x08
	TagList      = 0x09
	TagCompound  = 0x0A
	TagIntArray  = 0x0B
	TagLongArray = 0x0C

	// TagMax is the highest valid tag ID. Anything above it on the wire is
	// malformed data.
	TagMax = TagLongArray
)

// Fixed payload widths in bytes for the scalar tags.
const (
	ByteSize   = 1
	ShortSize  = 2
	IntSize    = 4
	LongSize   = 8
	FloatSize  = 4
	DoubleSize = 8
)

// Length-prefix field sizes.
const (
	// StringLenSize is the width of the unsigned length prefix before string
	// bytes. The prefix counts UTF-8 bytes, not characters.
	StringLenSize = 2

	// ArrayLenSize is the width of the signed element-count prefix before
	// ByteArray, IntArray, and LongArray payloads and List elements.
	ArrayLenSize = 4

	// TagIDSize is the width of a tag type ID on the wire.
	TagIDSize = 1
)

// MaxStringLen is the largest encodable string payload in bytes, limited by
// the 16-bit unsigned length prefix.
const MaxStringLen = 0xFFFF

// File-level framing. A file is:
//
//	[gzip wrapper] tag_id(TagCompound) name_len(u16) name_bytes compound_body
//
// MinFileSize is the smallest well-formed uncompressed file: compound ID,
// zero name length, and the root's End terminator.
const MinFileSize = TagIDSize + StringLenSize + 1

// GzipMagic1 and GzipMagic2 are the first two bytes of a gzip stream, used
// to report (not decide) a file's compression; loading always tries gzip
// first and falls back to raw bytes.
const (
	GzipMagic1 = 0x1F
	GzipMagic2 = 0x8B
)
