package nbt

// Equal reports payload equality between two tags: scalar values compare by
// value, arrays element-wise, lists element-wise in order, and compounds by
// key set, insertion order, and recursive entry equality. Identity never
// matters; two independently built trees with the same content are equal.
//
// Float and Double compare with ==, so NaN payloads are never equal. NaN
// does not round-trip through equality, but it does round-trip through the
// codec bit-exactly.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *Byte:
		return x.Value == b.(*Byte).Value
	case *Short:
		return x.Value == b.(*Short).Value
	case *Int:
		return x.Value == b.(*Int).Value
	case *Long:
		return x.Value == b.(*Long).Value
	case *Float:
		return x.Value == b.(*Float).Value
	case *Double:
		return x.Value == b.(*Double).Value
	case *String:
		return x.Value == b.(*String).Value
	case *ByteArray:
		return byteArrayEqual(x, b.(*ByteArray))
	case *IntArray:
		return intArrayEqual(x, b.(*IntArray))
	case *LongArray:
		return longArrayEqual(x, b.(*LongArray))
	case *List:
		return listEqual(x, b.(*List))
	case *Compound:
		return compoundEqual(x, b.(*Compound))
	}
	return false
}

func byteArrayEqual(a, b *ByteArray) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i, v := range a.Elems {
		if v != b.Elems[i] {
			return false
		}
	}
	return true
}

func intArrayEqual(a, b *IntArray) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i, v := range a.Elems {
		if v != b.Elems[i] {
			return false
		}
	}
	return true
}

func longArrayEqual(a, b *LongArray) bool {
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i, v := range a.Elems {
		if v != b.Elems[i] {
			return false
		}
	}
	return true
}

func listEqual(a, b *List) bool {
	if len(a.elems) != len(b.elems) {
		return false
	}
	// Two empty lists are equal regardless of established element type;
	// the wire encodes both as End + zero count.
	for i, v := range a.elems {
		if !Equal(v, b.elems[i]) {
			return false
		}
	}
	return true
}

func compoundEqual(a, b *Compound) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k {
			return false
		}
		if !Equal(a.entries[k], b.entries[k]) {
			return false
		}
	}
	return true
}
