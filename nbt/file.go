package nbt

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/minetools/nbtkit/internal/format"
	"github.com/minetools/nbtkit/internal/storage"
)

// File is the on-disk container for an NBT document: one root compound plus
// a root name, optionally wrapped in a gzip stream.
type File struct {
	// Name is the root tag's name, usually empty in game files.
	Name string

	// Root is the document tree. Never nil on a loaded or freshly created
	// File.
	Root *Compound

	// Compressed records whether the source bytes were gzip-wrapped. Load
	// sets it; Save takes an explicit flag so callers can re-frame, and the
	// CLI uses this field to preserve the original framing.
	Compressed bool
}

// NewFile returns an empty document: empty root compound, empty name,
// compressed framing by default (the common case for game files).
func NewFile() *File {
	return &File{Root: NewCompound(), Compressed: true}
}

// Load reads and decodes the NBT file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load nbt: %w", err)
	}
	f, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("load nbt %s: %w", path, err)
	}
	return f, nil
}

// LoadBytes decodes an NBT document from raw file bytes. Compression status
// is unknown up front, so gzip decompression is tried first and the bytes
// are retried as-is when that fails; only the second attempt's error
// surfaces. The root tag must be a compound.
func LoadBytes(data []byte) (*File, error) {
	plain, compressed := tryGunzip(data)

	f, err := decodeFile(plain)
	if err != nil {
		return nil, err
	}
	f.Compressed = compressed
	return f, nil
}

// tryGunzip attempts gzip decompression and reports whether it succeeded.
// A failure at any point, including mid-stream corruption, falls back to
// the original bytes.
func tryGunzip(data []byte) ([]byte, bool) {
	if len(data) < 2 || data[0] != format.GzipMagic1 || data[1] != format.GzipMagic2 {
		return data, false
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return data, false
	}
	defer zr.Close()
	plain, err := io.ReadAll(zr)
	if err != nil {
		return data, false
	}
	return plain, true
}

// decodeFile parses the root header (compound ID byte, name string) and the
// compound body. Bytes past the root's End terminator are ignored.
func decodeFile(data []byte) (*File, error) {
	if len(data) < format.MinFileSize {
		return nil, fmt.Errorf("%d byte file: %w", len(data), ErrTruncated)
	}
	if data[0] != format.TagCompound {
		return nil, fmt.Errorf("root id %d: %w", data[0], ErrInvalidRoot)
	}
	name, off, err := decodeString(data, format.TagIDSize)
	if err != nil {
		return nil, fmt.Errorf("root name: %w", err)
	}
	root, _, err := DecodeCompound(data, off)
	if err != nil {
		return nil, err
	}
	return &File{Name: name, Root: root}, nil
}

// Encode serializes the document to its uncompressed wire form: compound ID
// byte, root name, compound body.
func (f *File) Encode() ([]byte, error) {
	if f.Root == nil {
		return nil, fmt.Errorf("save nbt: %w", ErrInvalidRoot)
	}
	out, err := appendNamed(nil, f.Name, f.Root)
	if err != nil {
		return nil, fmt.Errorf("save nbt: %w", err)
	}
	return out, nil
}

// Bytes returns the document's file bytes, gzip-wrapped when compressed is
// true.
func (f *File) Bytes(compressed bool) ([]byte, error) {
	raw, err := f.Encode()
	if err != nil {
		return nil, err
	}
	if !compressed {
		return raw, nil
	}
	var zbuf bytes.Buffer
	zw := gzip.NewWriter(&zbuf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("save nbt: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("save nbt: %w", err)
	}
	return zbuf.Bytes(), nil
}

// Save writes the document to path atomically, gzip-wrapped when compressed
// is true, and records the chosen framing on f.
func (f *File) Save(path string, compressed bool) error {
	data, err := f.Bytes(compressed)
	if err != nil {
		return err
	}
	w := storage.FileWriter{Path: path}
	if err := w.Write(data); err != nil {
		return fmt.Errorf("save nbt %s: %w", path, err)
	}
	f.Compressed = compressed
	return nil
}
