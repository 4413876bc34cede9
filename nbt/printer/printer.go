// Package printer renders NBT trees as indented text, JSON, or SNBT
// (stringified NBT).
package printer

import (
	"fmt"
	"io"

	"github.com/minetools/nbtkit/nbt"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxArrayElems = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable indented tree.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"

	// FormatSNBT outputs stringified NBT, the text form the game's commands
	// accept.
	FormatSNBT Format = "snbt"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, snbt).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	MaxDepth int

	// MaxArrayElems limits how many array elements the text format shows
	// before eliding the rest. 0 = no limit.
	// Default: 32
	MaxArrayElems int

	// ShowTypes includes TAG_* annotations in text output.
	// Default: true
	ShowTypes bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxArrayElems: DefaultMaxArrayElems,
		ShowTypes:     true,
	}
}

// Printer handles formatted output of NBT trees.
type Printer struct {
	opts Options
	w    io.Writer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	if err := p.PrintFile(f); err != nil {
//	    log.Fatal(err)
//	}
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, w: w}
}

// Print renders a single named tag in the configured format.
func (p *Printer) Print(name string, t nbt.Tag) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(name, t, 0)
	case FormatJSON:
		return p.printJSON(t)
	case FormatSNBT:
		return p.printSNBT(t)
	}
	return fmt.Errorf("printer: unknown format %q", p.opts.Format)
}

// PrintFile renders a document's root compound under its root name.
func (p *Printer) PrintFile(f *nbt.File) error {
	return p.Print(f.Name, f.Root)
}
