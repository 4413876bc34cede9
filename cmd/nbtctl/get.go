package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
	"github.com/minetools/nbtkit/nbt/printer"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print a single tag",
		Long: `The get command resolves a tag path and prints the tag it names.

Example:
  nbtctl get level.dat "Data/LevelName"
  nbtctl get level.dat "Data/Player/Pos[0]"
  nbtctl get level.dat "Data" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	t, err := nbt.Lookup(f.Root, args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatSNBT
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).Print(args[1], t)
}
