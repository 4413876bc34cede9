package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "string", "Value type (byte, short, int, long, float, double, string)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set a scalar tag",
		Long: `The set command stores a scalar tag at the given path and writes the
file back, preserving its original compression.

Byte and short input is masked into the signed range, so --type byte with
value 300 stores 44.

Example:
  nbtctl set level.dat "Data/LevelName" "My World"
  nbtctl set level.dat "Data/Difficulty" 2 --type byte
  nbtctl set level.dat "Data/Time" 1000 --type long`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	filePath, tagPath, rawValue := args[0], args[1], args[2]

	t, err := parseTagValue(setType, rawValue)
	if err != nil {
		return err
	}

	f, err := loadFile(filePath)
	if err != nil {
		return err
	}

	if err := nbt.SetPath(f.Root, tagPath, t); err != nil {
		return fmt.Errorf("failed to set tag: %w", err)
	}

	if err := saveInPlace(f, filePath); err != nil {
		return err
	}

	printInfo("Set %s = %s (%s)\n", tagPath, rawValue, t.Type())
	return nil
}
