//go:build darwin

package storage

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk.
//
// On macOS, fsync() only pushes data to the drive cache. F_FULLFSYNC asks
// the drive to flush to the physical medium; fall back to fsync when the
// filesystem does not support it.
func syncFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	if err != nil {
		return f.Sync()
	}
	return nil
}
