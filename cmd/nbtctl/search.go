package main

import (
	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
)

func init() {
	rootCmd.AddCommand(newSearchCmd())
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <file> <text>",
		Short: "Find tag paths by name",
		Long: `The search command walks the tag tree and prints every path whose name
contains the given text, case-insensitively.

Example:
  nbtctl search level.dat "version"
  nbtctl search player.dat "Pos"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

func runSearch(args []string) error {
	f, err := loadFile(args[0])
	if err != nil {
		return err
	}

	hits := nbt.Find(f.Root, args[1])

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    args[0],
			"query":   args[1],
			"matches": hits,
		})
	}

	for _, hit := range hits {
		printInfo("%s\n", hit)
	}
	printVerbose("%d match(es)\n", len(hits))
	return nil
}
