package printer_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/minetools/nbtkit/nbt"
	"github.com/minetools/nbtkit/nbt/printer"
)

func textPrint(t *testing.T, opts printer.Options, name string, tag nbt.Tag) string {
	t.Helper()
	var buf bytes.Buffer
	p := printer.New(&buf, opts)
	require.NoError(t, p.Print(name, tag))
	return buf.String()
}

func TestTextOutput(t *testing.T) {
	root := nbt.NewCompound()
	root.Set("count", &nbt.Int{Value: 5})
	root.Set("name", &nbt.String{Value: "steve"})

	out := textPrint(t, printer.DefaultOptions(), "", root)
	require.Equal(t, strings.Join([]string{
		`(root) [TAG_Compound]: 2 entries`,
		`  "count" [TAG_Int] = 5`,
		`  "name" [TAG_String] = "steve"`,
	}, "\n")+"\n", out)
}

func TestTextWithoutTypes(t *testing.T) {
	root := nbt.NewCompound()
	root.Set("x", &nbt.Byte{Value: -1})

	opts := printer.DefaultOptions()
	opts.ShowTypes = false
	out := textPrint(t, opts, "hello", root)
	require.Equal(t, "\"hello\": 1 entries\n  \"x\" = -1\n", out)
}

func TestTextMaxDepth(t *testing.T) {
	inner := nbt.NewCompound()
	inner.Set("deep", &nbt.Int{Value: 1})
	root := nbt.NewCompound()
	root.Set("inner", inner)

	opts := printer.DefaultOptions()
	opts.MaxDepth = 1
	out := textPrint(t, opts, "", root)
	require.Equal(t, "(root) [TAG_Compound]: 1 entries\n", out)
}

func TestTextListElements(t *testing.T) {
	l := nbt.NewList()
	require.NoError(t, l.Append(&nbt.Double{Value: 1.5}))
	require.NoError(t, l.Append(&nbt.Double{Value: 2}))

	out := textPrint(t, printer.DefaultOptions(), "pos", l)
	require.Equal(t, strings.Join([]string{
		`"pos" [TAG_List]: 2 elements of TAG_Double`,
		`  "[0]" [TAG_Double] = 1.5`,
		`  "[1]" [TAG_Double] = 2`,
	}, "\n")+"\n", out)
}

func TestTextArrayElision(t *testing.T) {
	opts := printer.DefaultOptions()
	opts.MaxArrayElems = 2
	opts.ShowTypes = false

	out := textPrint(t, opts, "ids", &nbt.IntArray{Elems: []int32{1, 2, 3, 4}})
	require.Equal(t, "\"ids\" = [1, 2, ... 2 more]\n", out)

	// Under the limit nothing is elided.
	out = textPrint(t, opts, "ids", &nbt.IntArray{Elems: []int32{1, 2}})
	require.Equal(t, "\"ids\" = [1, 2]\n", out)
}

func TestJSONPlain(t *testing.T) {
	root := nbt.NewCompound()
	root.Set("count", &nbt.Int{Value: 5})
	root.Set("ids", &nbt.ByteArray{Elems: []int8{1, 2}})

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatJSON
	opts.ShowTypes = false

	out := textPrint(t, opts, "", root)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, float64(5), got["count"])
	require.Equal(t, []any{float64(1), float64(2)}, got["ids"])
}

func TestJSONTyped(t *testing.T) {
	root := nbt.NewCompound()
	root.Set("count", &nbt.Int{Value: 5})

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatJSON

	out := textPrint(t, opts, "", root)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "TAG_Compound", got["type"])

	entries := got["value"].(map[string]any)
	count := entries["count"].(map[string]any)
	require.Equal(t, "TAG_Int", count["type"])
	require.Equal(t, float64(5), count["value"])
}

func TestSNBTOutput(t *testing.T) {
	nums := nbt.NewList()
	require.NoError(t, nums.Append(&nbt.Int{Value: 1}))
	require.NoError(t, nums.Append(&nbt.Int{Value: 2}))

	nested := nbt.NewCompound()
	nested.Set("a b", &nbt.Int{Value: 7})

	root := nbt.NewCompound()
	root.Set("count", &nbt.Byte{Value: 1})
	root.Set("big", &nbt.Long{Value: 2})
	root.Set("half", &nbt.Float{Value: 1.5})
	root.Set("whole", &nbt.Double{Value: 3})
	root.Set("name", &nbt.String{Value: `he"y`})
	root.Set("ids", &nbt.IntArray{Elems: []int32{1, -2}})
	root.Set("mask", &nbt.ByteArray{Elems: []int8{0, 1}})
	root.Set("times", &nbt.LongArray{Elems: []int64{5}})
	root.Set("nums", nums)
	root.Set("nested", nested)

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatSNBT

	out := textPrint(t, opts, "", root)
	require.Equal(t, `{count:1b,big:2L,half:1.5f,whole:3.0d,name:"he\"y",`+
		`ids:[I;1,-2],mask:[B;0b,1b],times:[L;5L],nums:[1,2],nested:{"a b":7}}`+"\n", out)
}

func TestSNBTIntegralFloatsKeepPoint(t *testing.T) {
	opts := printer.DefaultOptions()
	opts.Format = printer.FormatSNBT

	require.Equal(t, "1.0f\n", textPrint(t, opts, "", &nbt.Float{Value: 1}))
	require.Equal(t, "-4.0d\n", textPrint(t, opts, "", &nbt.Double{Value: -4}))
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	p := printer.New(&buf, printer.Options{Format: "xml"})
	require.Error(t, p.Print("", nbt.NewCompound()))
}

func TestPrintFileUsesRootName(t *testing.T) {
	f := nbt.NewFile()
	f.Name = "doc"

	var buf bytes.Buffer
	p := printer.New(&buf, printer.DefaultOptions())
	require.NoError(t, p.PrintFile(f))
	require.Equal(t, "\"doc\" [TAG_Compound]: 0 entries\n", buf.String())
}
