package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate NBT structure and game compatibility",
		Long: `The validate command checks an NBT file for structural validity (the
root is a compound and the tree fully re-serializes) and runs advisory
game-compatibility heuristics based on the filename. Warnings do not make
a file invalid.

Example:
  nbtctl validate level.dat
  nbtctl validate world/playerdata/player.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	filePath := args[0]

	f, err := loadFile(filePath)
	if err != nil {
		return err
	}

	valid, issues := f.Validate(filePath)

	result := map[string]interface{}{
		"file":   filePath,
		"valid":  valid,
		"issues": issues,
	}

	if jsonOut {
		return printJSON(result)
	}

	if valid {
		printInfo("%s: valid\n", filePath)
	} else {
		printInfo("%s: INVALID\n", filePath)
	}
	for _, issue := range issues {
		printInfo("  - %s\n", issue)
	}
	return nil
}
