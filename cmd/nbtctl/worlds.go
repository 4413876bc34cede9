package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/minetools/nbtkit/internal/storage"
)

var worldsDir string

func init() {
	cmd := newWorldsCmd()
	cmd.Flags().StringVar(&worldsDir, "dir", "", "Save directory (default: platform Minecraft folder)")
	rootCmd.AddCommand(cmd)
}

func newWorldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worlds",
		Short: "List world saves in the game's save directory",
		Long: `The worlds command lists the world folders (directories containing a
level.dat) under the platform's Minecraft save directory, or under --dir.

Example:
  nbtctl worlds
  nbtctl worlds --dir /srv/minecraft/saves`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorlds()
		},
	}
	return cmd
}

func runWorlds() error {
	dir := worldsDir
	if dir == "" {
		dir = filepath.Join(storage.DefaultSaveDir(), "saves")
	}
	printVerbose("Scanning %s\n", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var worlds []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		levelPath := filepath.Join(dir, entry.Name(), "level.dat")
		if _, err := os.Stat(levelPath); err == nil {
			worlds = append(worlds, entry.Name())
		}
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"dir":    dir,
			"worlds": worlds,
		})
	}

	for _, w := range worlds {
		printInfo("%s\n", w)
	}
	printVerbose("%d world(s)\n", len(worlds))
	return nil
}
