package printer

import (
	"encoding/json"
	"fmt"

	"github.com/minetools/nbtkit/nbt"
)

// jsonTag is the typed JSON representation used when ShowTypes is set.
type jsonTag struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// printJSON renders t as indented JSON. With ShowTypes, every tag becomes a
// {type, value} pair so the NBT variant survives the trip; without it, tags
// collapse to plain JSON values (compound key order is lost to JSON's
// object semantics either way).
func (p *Printer) printJSON(t nbt.Tag) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(p.toJSON(t))
}

func (p *Printer) toJSON(t nbt.Tag) any {
	var value any
	switch x := t.(type) {
	case *nbt.Byte:
		value = x.Value
	case *nbt.Short:
		value = x.Value
	case *nbt.Int:
		value = x.Value
	case *nbt.Long:
		value = x.Value
	case *nbt.Float:
		value = x.Value
	case *nbt.Double:
		value = x.Value
	case *nbt.String:
		value = x.Value
	case *nbt.ByteArray:
		value = x.Elems
	case *nbt.IntArray:
		value = x.Elems
	case *nbt.LongArray:
		value = x.Elems
	case *nbt.List:
		elems := make([]any, 0, x.Len())
		for i := 0; i < x.Len(); i++ {
			child, _ := x.Get(i)
			elems = append(elems, p.toJSON(child))
		}
		value = elems
	case *nbt.Compound:
		entries := make(map[string]any, x.Len())
		for _, key := range x.Keys() {
			child, _ := x.Get(key)
			entries[key] = p.toJSON(child)
		}
		value = entries
	default:
		value = fmt.Sprintf("<%s>", t.Type())
	}

	if p.opts.ShowTypes {
		return jsonTag{Type: t.Type().String(), Value: value}
	}
	return value
}
