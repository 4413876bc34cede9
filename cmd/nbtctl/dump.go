package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
	"github.com/minetools/nbtkit/nbt/printer"
)

var (
	dumpPath   string
	dumpDepth  int
	dumpFormat string
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpPath, "path", "", "Dump only a specific subtree")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().StringVar(&dumpFormat, "format", "text", "Output format (text, json, snbt)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of NBT contents",
		Long: `The dump command prints the tag tree of an NBT file.

Example:
  nbtctl dump level.dat
  nbtctl dump level.dat --path "Data/Player"
  nbtctl dump level.dat --depth 2
  nbtctl dump level.dat --format snbt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	var target nbt.Tag = f.Root
	name := f.Name
	if dumpPath != "" {
		target, err = nbt.Lookup(f.Root, dumpPath)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		name = dumpPath
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.Format(dumpFormat)
	opts.MaxDepth = dumpDepth
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	return printer.New(os.Stdout, opts).Print(name, target)
}
