//go:build linux || freebsd

package storage

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk.
//
// On Linux/FreeBSD, fdatasync() provides sufficient durability for a file
// that is about to be renamed into place; metadata like mtime can lag.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
