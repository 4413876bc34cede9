package nbt

import (
	"fmt"
	"strings"
)

// WalkFunc visits one tag during a traversal. path is the slash-separated
// location of the tag ("" for the root), depth its nesting level. Returning
// an error stops the walk and surfaces that error.
type WalkFunc func(path string, t Tag, depth int) error

// Walk traverses t depth-first in document order: a compound's entries in
// insertion order, a list's elements by index. Array elements are not
// visited individually; the array tag itself is a leaf.
func Walk(t Tag, fn WalkFunc) error {
	return walk("", t, 0, fn)
}

func walk(path string, t Tag, depth int, fn WalkFunc) error {
	if err := fn(path, t, depth); err != nil {
		return err
	}
	switch x := t.(type) {
	case *Compound:
		for _, key := range x.keys {
			child := x.entries[key]
			childPath := key
			if path != "" {
				childPath = path + PathSeparator + key
			}
			if err := walk(childPath, child, depth+1, fn); err != nil {
				return err
			}
		}
	case *List:
		for i, child := range x.elems {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			if err := walk(childPath, child, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Counts summarizes a tree: totals per tag type, overall tag count, and
// maximum nesting depth. Used by diagnostics output.
type Counts struct {
	ByType   map[TagType]int
	Total    int
	MaxDepth int
}

// Count walks t and tallies its contents.
func Count(t Tag) Counts {
	c := Counts{ByType: make(map[TagType]int)}
	_ = Walk(t, func(_ string, tag Tag, depth int) error {
		c.ByType[tag.Type()]++
		c.Total++
		if depth > c.MaxDepth {
			c.MaxDepth = depth
		}
		return nil
	})
	return c
}

// Find returns the paths of all tags whose key or path matches substr,
// case-insensitively. The root is never reported.
func Find(t Tag, substr string) []string {
	needle := strings.ToLower(substr)
	var hits []string
	_ = Walk(t, func(path string, _ Tag, _ int) error {
		if path == "" {
			return nil
		}
		if strings.Contains(strings.ToLower(path), needle) {
			hits = append(hits, path)
		}
		return nil
	})
	return hits
}
