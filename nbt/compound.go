package nbt

import "fmt"

// Compound is an insertion-ordered mapping from unique string keys to tags.
// Serialization order is insertion order, so a decode/encode round trip
// preserves the byte layout of well-formed input.
//
// The zero value is not usable; construct with NewCompound.
type Compound struct {
	keys    []string
	entries map[string]Tag
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{entries: make(map[string]Tag)}
}

func (*Compound) Type() TagType { return TypeCompound }
func (*Compound) isTag()        {}

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.keys) }

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Get returns the tag stored under key.
func (c *Compound) Get(key string) (Tag, bool) {
	t, ok := c.entries[key]
	return t, ok
}

// Set inserts or overwrites the entry under key. Overwriting keeps the
// key's original position in insertion order; only a fresh key is appended
// at the end.
func (c *Compound) Set(key string, t Tag) {
	if _, ok := c.entries[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.entries[key] = t
}

// Delete removes the entry under key, discarding its subtree. Returns
// ErrKeyNotFound when the key is absent; the compound is unchanged.
func (c *Compound) Delete(key string) error {
	if _, ok := c.entries[key]; !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	delete(c.entries, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Rename moves the entry under oldKey to newKey, keeping its slot in the
// insertion order. It fails with ErrKeyNotFound when oldKey is absent and
// ErrDuplicateKey when newKey is already taken; either failure leaves the
// compound unchanged. Renaming a key to itself is a no-op.
func (c *Compound) Rename(oldKey, newKey string) error {
	if newKey == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidKey)
	}
	if oldKey == newKey {
		if !c.Has(oldKey) {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, oldKey)
		}
		return nil
	}
	t, ok := c.entries[oldKey]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, oldKey)
	}
	if _, taken := c.entries[newKey]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, newKey)
	}
	delete(c.entries, oldKey)
	c.entries[newKey] = t
	for i, k := range c.keys {
		if k == oldKey {
			c.keys[i] = newKey
			break
		}
	}
	return nil
}

// Keys returns the keys in insertion order. The slice is a copy.
func (c *Compound) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// At returns the i-th entry in insertion order.
func (c *Compound) At(i int) (string, Tag, error) {
	if i < 0 || i >= len(c.keys) {
		return "", nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.keys))
	}
	k := c.keys[i]
	return k, c.entries[k], nil
}
