package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minetools/nbtkit/nbt"
)

// printSNBT renders t in stringified NBT form, the compact text syntax the
// game's commands accept: typed numeric suffixes (1b, 2s, 3L, 4.5f, 6.7d),
// quoted strings, {key:value} compounds, [a,b] lists, and [B;..] [I;..]
// [L;..] array forms.
func (p *Printer) printSNBT(t nbt.Tag) error {
	var sb strings.Builder
	if err := appendSNBT(&sb, t); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.w, sb.String())
	return err
}

func appendSNBT(sb *strings.Builder, t nbt.Tag) error {
	switch x := t.(type) {
	case *nbt.Byte:
		fmt.Fprintf(sb, "%db", x.Value)
	case *nbt.Short:
		fmt.Fprintf(sb, "%ds", x.Value)
	case *nbt.Int:
		fmt.Fprintf(sb, "%d", x.Value)
	case *nbt.Long:
		fmt.Fprintf(sb, "%dL", x.Value)
	case *nbt.Float:
		sb.WriteString(formatFloat(float64(x.Value), 32) + "f")
	case *nbt.Double:
		sb.WriteString(formatFloat(x.Value, 64) + "d")
	case *nbt.String:
		sb.WriteString(quoteSNBT(x.Value))
	case *nbt.ByteArray:
		sb.WriteString("[B;")
		for i, v := range x.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%db", v)
		}
		sb.WriteByte(']')
	case *nbt.IntArray:
		sb.WriteString("[I;")
		for i, v := range x.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%d", v)
		}
		sb.WriteByte(']')
	case *nbt.LongArray:
		sb.WriteString("[L;")
		for i, v := range x.Elems {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "%dL", v)
		}
		sb.WriteByte(']')
	case *nbt.List:
		sb.WriteByte('[')
		for i := 0; i < x.Len(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			child, err := x.Get(i)
			if err != nil {
				return err
			}
			if err := appendSNBT(sb, child); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case *nbt.Compound:
		sb.WriteByte('{')
		for i, key := range x.Keys() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(quoteKey(key))
			sb.WriteByte(':')
			child, _ := x.Get(key)
			if err := appendSNBT(sb, child); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("printer: cannot render %s as SNBT", t.Type())
	}
	return nil
}

// formatFloat keeps a decimal point or exponent so the value reads as a
// float even when integral (1 becomes 1.0).
func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && s != "NaN" {
		s += ".0"
	}
	return s
}

// quoteKey leaves bare-safe keys unquoted; everything else gets string
// quoting.
func quoteKey(key string) string {
	if key != "" && isBareSafe(key) {
		return key
	}
	return quoteSNBT(key)
}

func isBareSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.' || r == '+':
		default:
			return false
		}
	}
	return true
}

// quoteSNBT double-quotes s, escaping backslashes and quotes.
func quoteSNBT(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}
