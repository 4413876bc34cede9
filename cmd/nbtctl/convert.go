package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/internal/storage"
	"github.com/minetools/nbtkit/nbt/printer"
)

var (
	convertCompress   bool
	convertDecompress bool
	convertFormat     string
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().BoolVar(&convertCompress, "compress", false, "Write gzip-framed NBT")
	cmd.Flags().BoolVar(&convertDecompress, "decompress", false, "Write raw NBT")
	cmd.Flags().StringVar(&convertFormat, "format", "", "Export as text format instead (json, snbt)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file> <out>",
		Short: "Re-frame or export an NBT file",
		Long: `The convert command rewrites an NBT file with different framing, or
exports it to a text format.

Example:
  nbtctl convert level.dat level.uncompressed.dat --decompress
  nbtctl convert level.uncompressed.dat level.dat --compress
  nbtctl convert level.dat level.snbt --format snbt
  nbtctl convert level.dat level.json --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	inPath, outPath := args[0], args[1]

	if convertCompress && convertDecompress {
		return fmt.Errorf("--compress and --decompress are mutually exclusive")
	}

	f, err := loadFile(inPath)
	if err != nil {
		return err
	}

	if convertFormat != "" {
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		opts := printer.DefaultOptions()
		opts.Format = printer.Format(convertFormat)
		if err := printer.New(out, opts).PrintFile(f); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		printInfo("Exported %s to %s (%s)\n", inPath, outPath, convertFormat)
		return nil
	}

	compressed := f.Compressed
	if convertCompress {
		compressed = true
	}
	if convertDecompress {
		compressed = false
	}

	data, err := f.Bytes(compressed)
	if err != nil {
		return err
	}
	w := storage.FileWriter{Path: outPath}
	if err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	framing := "raw"
	if compressed {
		framing = "gzip"
	}
	printInfo("Wrote %s (%s, %d bytes)\n", outPath, framing, len(data))
	return nil
}
