package printer

import (
	"fmt"
	"strings"

	"github.com/minetools/nbtkit/nbt"
)

// printText prints a named tag as an indented tree line plus its children.
func (p *Printer) printText(name string, t nbt.Tag, depth int) error {
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}

	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	label := fmt.Sprintf("%q", name)
	if name == "" && depth == 0 {
		label = "(root)"
	}

	var typeNote string
	if p.opts.ShowTypes {
		typeNote = fmt.Sprintf(" [%s]", t.Type())
	}

	switch x := t.(type) {
	case *nbt.Compound:
		fmt.Fprintf(p.w, "%s%s%s: %d entries\n", indent, label, typeNote, x.Len())
		for _, key := range x.Keys() {
			child, _ := x.Get(key)
			if err := p.printText(key, child, depth+1); err != nil {
				return err
			}
		}

	case *nbt.List:
		fmt.Fprintf(p.w, "%s%s%s: %d elements of %s\n", indent, label, typeNote, x.Len(), x.ElemType())
		for i := 0; i < x.Len(); i++ {
			child, err := x.Get(i)
			if err != nil {
				return err
			}
			if err := p.printText(fmt.Sprintf("[%d]", i), child, depth+1); err != nil {
				return err
			}
		}

	case *nbt.ByteArray:
		fmt.Fprintf(p.w, "%s%s%s = %s\n", indent, label, typeNote, p.formatInts(len(x.Elems), func(i int) string {
			return fmt.Sprintf("%d", x.Elems[i])
		}))

	case *nbt.IntArray:
		fmt.Fprintf(p.w, "%s%s%s = %s\n", indent, label, typeNote, p.formatInts(len(x.Elems), func(i int) string {
			return fmt.Sprintf("%d", x.Elems[i])
		}))

	case *nbt.LongArray:
		fmt.Fprintf(p.w, "%s%s%s = %s\n", indent, label, typeNote, p.formatInts(len(x.Elems), func(i int) string {
			return fmt.Sprintf("%d", x.Elems[i])
		}))

	default:
		fmt.Fprintf(p.w, "%s%s%s = %s\n", indent, label, typeNote, scalarString(t))
	}

	return nil
}

// formatInts renders up to MaxArrayElems elements and elides the rest.
func (p *Printer) formatInts(n int, elem func(int) string) string {
	limit := n
	if p.opts.MaxArrayElems > 0 && n > p.opts.MaxArrayElems {
		limit = p.opts.MaxArrayElems
	}
	parts := make([]string, 0, limit+1)
	for i := 0; i < limit; i++ {
		parts = append(parts, elem(i))
	}
	if limit < n {
		parts = append(parts, fmt.Sprintf("... %d more", n-limit))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// scalarString renders a scalar tag's payload.
func scalarString(t nbt.Tag) string {
	switch x := t.(type) {
	case *nbt.Byte:
		return fmt.Sprintf("%d", x.Value)
	case *nbt.Short:
		return fmt.Sprintf("%d", x.Value)
	case *nbt.Int:
		return fmt.Sprintf("%d", x.Value)
	case *nbt.Long:
		return fmt.Sprintf("%d", x.Value)
	case *nbt.Float:
		return fmt.Sprintf("%g", x.Value)
	case *nbt.Double:
		return fmt.Sprintf("%g", x.Value)
	case *nbt.String:
		return fmt.Sprintf("%q", x.Value)
	}
	return fmt.Sprintf("<%s>", t.Type())
}
