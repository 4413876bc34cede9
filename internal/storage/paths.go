package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultSaveDir returns the platform's conventional Minecraft data
// directory, falling back to the user's home directory when it does not
// exist. Resolve this once at startup and pass it down; nothing in the
// codec or tag model consults it.
func DefaultSaveDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	var candidate string
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			candidate = filepath.Join(appdata, ".minecraft")
		}
	case "darwin":
		candidate = filepath.Join(home, "Library", "Application Support", "minecraft")
	default:
		candidate = filepath.Join(home, ".minecraft")
	}

	if candidate != "" {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return home
}
