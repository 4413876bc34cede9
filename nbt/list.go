package nbt

import "fmt"

// List is an ordered sequence of tags sharing a single variant. The element
// type is TypeEnd while the list is empty and is fixed by the first append;
// every later element must match it.
type List struct {
	elem  TagType
	elems []Tag
}

// NewList returns an empty list whose element type will be established by
// the first appended tag.
func NewList() *List {
	return &List{elem: TypeEnd}
}

// NewListOf returns an empty list with the element type already fixed.
func NewListOf(elem TagType) *List {
	return &List{elem: elem}
}

func (*List) Type() TagType { return TypeList }
func (*List) isTag()        {}

// ElemType returns the established element type, TypeEnd when the list has
// never held an element.
func (l *List) ElemType() TagType { return l.elem }

// Len returns the element count.
func (l *List) Len() int { return len(l.elems) }

// Append adds t to the list. The first append on a fresh list fixes the
// element type; afterwards a mismatched variant fails with ErrTypeMismatch
// and the list is left untouched.
func (l *List) Append(t Tag) error {
	if l.elem == TypeEnd {
		l.elem = t.Type()
	} else if t.Type() != l.elem {
		return fmt.Errorf("%w: list holds %s, got %s", ErrTypeMismatch, l.elem, t.Type())
	}
	l.elems = append(l.elems, t)
	return nil
}

// Get returns the i-th element.
func (l *List) Get(i int) (Tag, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.elems))
	}
	return l.elems[i], nil
}

// Set replaces the i-th element, enforcing the established element type.
func (l *List) Set(i int, t Tag) error {
	if i < 0 || i >= len(l.elems) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.elems))
	}
	if t.Type() != l.elem {
		return fmt.Errorf("%w: list holds %s, got %s", ErrTypeMismatch, l.elem, t.Type())
	}
	l.elems[i] = t
	return nil
}

// Delete removes the i-th element, discarding its subtree. The element type
// stays fixed even when the last element is removed.
func (l *List) Delete(i int) error {
	if i < 0 || i >= len(l.elems) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(l.elems))
	}
	l.elems = append(l.elems[:i], l.elems[i+1:]...)
	return nil
}
