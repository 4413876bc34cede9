package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
)

func init() {
	rootCmd.AddCommand(newRenameCmd())
}

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <file> <path> <newname>",
		Short: "Rename a compound entry",
		Long: `The rename command changes the key of a compound entry in place. The
entry keeps its position in the compound's order and its payload is
untouched.

Example:
  nbtctl rename level.dat "Data/LevelName" "WorldName"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(args)
		},
	}
	return cmd
}

func runRename(args []string) error {
	filePath, tagPath, newName := args[0], args[1], args[2]

	f, err := loadFile(filePath)
	if err != nil {
		return err
	}

	if err := nbt.RenamePath(f.Root, tagPath, newName); err != nil {
		return fmt.Errorf("failed to rename tag: %w", err)
	}

	if err := saveInPlace(f, filePath); err != nil {
		return err
	}

	printInfo("Renamed %s to %q\n", tagPath, newName)
	return nil
}
