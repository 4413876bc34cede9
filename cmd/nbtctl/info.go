package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/nbt"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show file and tree statistics",
		Long: `The info command reports a file's framing, root name, size, and tag
statistics (count per type, total, maximum depth).

Example:
  nbtctl info level.dat
  nbtctl info level.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	filePath := args[0]

	stat, err := os.Stat(filePath)
	if err != nil {
		return err
	}

	f, err := loadFile(filePath)
	if err != nil {
		return err
	}

	counts := nbt.Count(f.Root)

	compression := "none"
	if f.Compressed {
		compression = "gzip"
	}

	byType := make(map[string]int, len(counts.ByType))
	for typ, n := range counts.ByType {
		byType[typ.String()] = n
	}

	result := map[string]interface{}{
		"file":        filePath,
		"size_bytes":  stat.Size(),
		"compression": compression,
		"root_name":   f.Name,
		"entries":     f.Root.Len(),
		"total_tags":  counts.Total,
		"max_depth":   counts.MaxDepth,
		"tags":        byType,
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("File:        %s\n", filePath)
	printInfo("Size:        %d bytes\n", stat.Size())
	printInfo("Compression: %s\n", compression)
	printInfo("Root name:   %q\n", f.Name)
	printInfo("Entries:     %d\n", f.Root.Len())
	printInfo("Total tags:  %d\n", counts.Total)
	printInfo("Max depth:   %d\n", counts.MaxDepth)
	for typ, n := range byType {
		printInfo("  %-16s %d\n", typ, n)
	}
	return nil
}
