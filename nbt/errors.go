package nbt

import (
	"errors"

	"github.com/minetools/nbtkit/internal/format"
)

var (
	// ErrTypeMismatch indicates a tag of the wrong variant for the operation,
	// such as appending a Short to a list of Ints.
	ErrTypeMismatch = errors.New("nbt: tag type mismatch")

	// ErrKeyNotFound indicates the compound has no entry under the given key.
	ErrKeyNotFound = errors.New("nbt: key not found")

	// ErrDuplicateKey indicates a rename target that already exists.
	ErrDuplicateKey = errors.New("nbt: key already exists")

	// ErrIndexOutOfRange indicates a list index outside [0, Len).
	ErrIndexOutOfRange = errors.New("nbt: index out of range")

	// ErrInvalidKey indicates an empty or otherwise unusable compound key.
	ErrInvalidKey = errors.New("nbt: invalid key")

	// ErrNotIndexable indicates a path step applied [i] to a non-list tag.
	ErrNotIndexable = errors.New("nbt: tag does not support indexing")

	// ErrNotCompound indicates a path step descended into a non-compound tag.
	ErrNotCompound = errors.New("nbt: tag is not a compound")
)

// Low-level wire errors, re-exported so callers can branch on decode
// failures without importing internal/format.
var (
	ErrTruncated      = format.ErrTruncated
	ErrUnknownTag     = format.ErrUnknownTag
	ErrNegativeLength = format.ErrNegativeLength
	ErrInvalidString  = format.ErrInvalidString
	ErrInvalidRoot    = format.ErrInvalidRoot
	ErrStringTooLong  = format.ErrStringTooLong
)
