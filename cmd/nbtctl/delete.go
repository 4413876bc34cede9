package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
)

func init() {
	rootCmd.AddCommand(newDeleteCmd())
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <file> <path>",
		Short: "Delete a tag",
		Long: `The delete command removes the tag at the given path, discarding its
subtree, and writes the file back.

Example:
  nbtctl delete level.dat "Data/Player/Inventory[3]"
  nbtctl delete level.dat "Data/GameRules/doDaylightCycle"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
	return cmd
}

func runDelete(args []string) error {
	filePath, tagPath := args[0], args[1]

	f, err := loadFile(filePath)
	if err != nil {
		return err
	}

	if err := nbt.DeletePath(f.Root, tagPath); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	if err := saveInPlace(f, filePath); err != nil {
		return err
	}

	printInfo("Deleted %s\n", tagPath)
	return nil
}
