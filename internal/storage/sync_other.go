//go:build !linux && !freebsd && !darwin

package storage

import "os"

// syncFile flushes file data to disk using the portable Sync.
func syncFile(f *os.File) error {
	return f.Sync()
}
