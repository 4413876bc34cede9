package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a
	// structure, including a length field larger than the remaining buffer.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownTag indicates a tag ID byte outside the valid range.
	ErrUnknownTag = errors.New("format: unknown tag type")
	// ErrNegativeLength indicates a negative element-count prefix.
	ErrNegativeLength = errors.New("format: negative length")
	// ErrInvalidString indicates string payload bytes that are not valid UTF-8.
	ErrInvalidString = errors.New("format: invalid UTF-8 string")
	// ErrInvalidRoot indicates a file whose root tag is not a compound.
	ErrInvalidRoot = errors.New("format: root tag is not a compound")
	// ErrStringTooLong indicates a string payload exceeding the 16-bit
	// length prefix on encode.
	ErrStringTooLong = errors.New("format: string exceeds 65535 bytes")
)
