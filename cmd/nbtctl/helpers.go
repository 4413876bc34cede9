package main

import (
	"fmt"
	"strconv"

	"github.com/minetools/nbtkit/nbt"
)

// parseTagValue builds a scalar tag from CLI input. Integer input for byte
// and short is masked into the signed domain the same way editing surfaces
// do, so "300" becomes byte 44 rather than an error.
func parseTagValue(typeName, raw string) (nbt.Tag, error) {
	switch typeName {
	case "byte":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid byte value %q: %w", raw, err)
		}
		return nbt.ByteFromInt(v), nil
	case "short":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid short value %q: %w", raw, err)
		}
		return nbt.ShortFromInt(v), nil
	case "int":
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid int value %q: %w", raw, err)
		}
		return &nbt.Int{Value: int32(v)}, nil
	case "long":
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid long value %q: %w", raw, err)
		}
		return &nbt.Long{Value: v}, nil
	case "float":
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float value %q: %w", raw, err)
		}
		return &nbt.Float{Value: float32(v)}, nil
	case "double":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid double value %q: %w", raw, err)
		}
		return &nbt.Double{Value: v}, nil
	case "string":
		return &nbt.String{Value: raw}, nil
	}
	return nil, fmt.Errorf("unknown value type %q (byte, short, int, long, float, double, string)", typeName)
}

// loadFile opens an NBT file with a verbose note about its framing.
func loadFile(path string) (*nbt.File, error) {
	f, err := nbt.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Compressed {
		printVerbose("Loaded %s (gzip)\n", path)
	} else {
		printVerbose("Loaded %s (uncompressed)\n", path)
	}
	return f, nil
}

// saveInPlace writes f back to path, preserving the framing Load observed.
func saveInPlace(f *nbt.File, path string) error {
	return f.Save(path, f.Compressed)
}
