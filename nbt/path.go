package nbt

import (
	"fmt"
	"strconv"
	"strings"
)

// PathSeparator splits compound keys in tag paths, e.g.
// "Data/Player/Inventory[3]/id". A trailing [i] on a segment indexes into
// a list and may repeat for nested lists. Keys containing '/' or '[' are
// not addressable through paths; use the Compound API directly for those.
const PathSeparator = "/"

type pathStep struct {
	key     string
	indices []int
}

func splitPath(path string) ([]pathStep, error) {
	if path == "" {
		return nil, nil
	}
	parts := strings.Split(path, PathSeparator)
	steps := make([]pathStep, 0, len(parts))
	for _, part := range parts {
		key := part
		var indices []int
		for {
			open := strings.LastIndex(key, "[")
			if open < 0 {
				break
			}
			if !strings.HasSuffix(key, "]") {
				return nil, fmt.Errorf("nbt: malformed index in path segment %q", part)
			}
			idx, err := strconv.Atoi(key[open+1 : len(key)-1])
			if err != nil {
				return nil, fmt.Errorf("nbt: malformed index in path segment %q", part)
			}
			indices = append([]int{idx}, indices...)
			key = key[:open]
		}
		if key == "" && len(indices) == 0 {
			return nil, fmt.Errorf("nbt: empty path segment")
		}
		steps = append(steps, pathStep{key: key, indices: indices})
	}
	return steps, nil
}

// Lookup resolves a slash-separated path against root and returns the tag
// it names. An empty path returns root itself. Misses fail with
// ErrKeyNotFound, ErrIndexOutOfRange, ErrNotCompound, or ErrNotIndexable.
func Lookup(root Tag, path string) (Tag, error) {
	steps, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, step := range steps {
		if step.key != "" {
			c, ok := cur.(*Compound)
			if !ok {
				return nil, fmt.Errorf("%w: cannot descend into %s with key %q", ErrNotCompound, cur.Type(), step.key)
			}
			child, ok := c.Get(step.key)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, step.key)
			}
			cur = child
		}
		for _, idx := range step.indices {
			l, ok := cur.(*List)
			if !ok {
				return nil, fmt.Errorf("%w: cannot index into %s", ErrNotIndexable, cur.Type())
			}
			elem, err := l.Get(idx)
			if err != nil {
				return nil, err
			}
			cur = elem
		}
	}
	return cur, nil
}

// SetPath stores t at path, creating or overwriting a compound entry or
// replacing a list element. The path's final segment names the slot; every
// preceding segment must already exist.
func SetPath(root Tag, path string, t Tag) error {
	parentPath, last, err := splitLast(path)
	if err != nil {
		return err
	}
	parent, err := Lookup(root, parentPath)
	if err != nil {
		return err
	}
	if last.key != "" && len(last.indices) == 0 {
		c, ok := parent.(*Compound)
		if !ok {
			return fmt.Errorf("%w: cannot set key %q on %s", ErrNotCompound, last.key, parent.Type())
		}
		c.Set(last.key, t)
		return nil
	}
	// Final segment ends in an index: resolve down to the owning list.
	cur := parent
	if last.key != "" {
		c, ok := cur.(*Compound)
		if !ok {
			return fmt.Errorf("%w: cannot descend into %s with key %q", ErrNotCompound, cur.Type(), last.key)
		}
		child, ok := c.Get(last.key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, last.key)
		}
		cur = child
	}
	for _, idx := range last.indices[:len(last.indices)-1] {
		l, ok := cur.(*List)
		if !ok {
			return fmt.Errorf("%w: cannot index into %s", ErrNotIndexable, cur.Type())
		}
		elem, err := l.Get(idx)
		if err != nil {
			return err
		}
		cur = elem
	}
	l, ok := cur.(*List)
	if !ok {
		return fmt.Errorf("%w: cannot index into %s", ErrNotIndexable, cur.Type())
	}
	return l.Set(last.indices[len(last.indices)-1], t)
}

// DeletePath removes the tag at path from its parent: a compound entry by
// key or a list element by index. The subtree is discarded.
func DeletePath(root Tag, path string) error {
	parentPath, last, err := splitLast(path)
	if err != nil {
		return err
	}
	parent, err := Lookup(root, parentPath)
	if err != nil {
		return err
	}
	if last.key != "" && len(last.indices) == 0 {
		c, ok := parent.(*Compound)
		if !ok {
			return fmt.Errorf("%w: cannot delete key %q from %s", ErrNotCompound, last.key, parent.Type())
		}
		return c.Delete(last.key)
	}
	cur := parent
	if last.key != "" {
		c, ok := cur.(*Compound)
		if !ok {
			return fmt.Errorf("%w: cannot descend into %s with key %q", ErrNotCompound, cur.Type(), last.key)
		}
		child, ok := c.Get(last.key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, last.key)
		}
		cur = child
	}
	for _, idx := range last.indices[:len(last.indices)-1] {
		l, ok := cur.(*List)
		if !ok {
			return fmt.Errorf("%w: cannot index into %s", ErrNotIndexable, cur.Type())
		}
		elem, err := l.Get(idx)
		if err != nil {
			return err
		}
		cur = elem
	}
	l, ok := cur.(*List)
	if !ok {
		return fmt.Errorf("%w: cannot index into %s", ErrNotIndexable, cur.Type())
	}
	return l.Delete(last.indices[len(last.indices)-1])
}

// RenamePath renames the compound entry at path in place, preserving its
// position in the parent's insertion order.
func RenamePath(root Tag, path, newName string) error {
	parentPath, last, err := splitLast(path)
	if err != nil {
		return err
	}
	if last.key == "" || len(last.indices) > 0 {
		return fmt.Errorf("%w: rename target must be a compound entry", ErrInvalidKey)
	}
	parent, err := Lookup(root, parentPath)
	if err != nil {
		return err
	}
	c, ok := parent.(*Compound)
	if !ok {
		return fmt.Errorf("%w: cannot rename key %q on %s", ErrNotCompound, last.key, parent.Type())
	}
	return c.Rename(last.key, newName)
}

func splitLast(path string) (string, pathStep, error) {
	steps, err := splitPath(path)
	if err != nil {
		return "", pathStep{}, err
	}
	if len(steps) == 0 {
		return "", pathStep{}, fmt.Errorf("%w: empty path", ErrInvalidKey)
	}
	last := steps[len(steps)-1]
	parts := strings.Split(path, PathSeparator)
	return strings.Join(parts[:len(parts)-1], PathSeparator), last, nil
}
