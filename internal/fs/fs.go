// Package fs provides the filesystem seam used by the shuffler's bucket
// store and CLI layer.
//
// The main types are:
//   - [FS]: interface for filesystem operations
//   - [File]: interface for open files (satisfied by [os.File])
//   - [Real]: production implementation using the [os] package
//
// The interface lets a caller substitute an [FS] that returns injected
// errors for the I/O-error branches, without touching the real filesystem.
// The tests in this repository use [Real].
package fs

import (
	"io"
	"os"
)

// File represents an open file descriptor.
//
// This interface is satisfied by [os.File] and can be used with all
// standard library functions that accept [io.Reader], [io.Writer], or
// [io.Closer].
type File interface {
	io.ReadWriteCloser

	// Stat returns the [os.FileInfo] for this file. See [os.File.Stat].
	Stat() (os.FileInfo, error)
}

// FS defines the filesystem operations the shuffler needs: opening input
// files, creating output and spill files, and managing the temp directory.
//
// All methods mirror their [os] package equivalents but can be
// intercepted for testing.
type FS interface {
	// Open opens a file for reading. See [os.Open].
	Open(path string) (File, error)

	// OpenFile opens a file with specified flags and permissions. See
	// [os.OpenFile]. Used for exclusive creation (O_CREATE|O_EXCL) of
	// both outputs and spill files, which are then grown by sequential
	// writes.
	OpenFile(path string, flag int, perm os.FileMode) (File, error)

	// ReadFile reads an entire file into memory. See [os.ReadFile]. Used
	// to load a spill file's contents into the in-memory bucket buffer.
	ReadFile(path string) ([]byte, error)

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info. See [os.Stat]. Used to size inputs for
	// bucket-count selection (§4.6).
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a path exists. Returns (false, nil) if not
	// found, (false, err) for other stat errors. Used to refuse
	// overwriting an existing output file.
	Exists(path string) (bool, error)

	// RemoveAll deletes a path and any children. See [os.RemoveAll]. Used
	// to recursively delete the temp directory on process exit.
	RemoveAll(path string) error
}

// Compile-time interface check.
var _ File = (*os.File)(nil)
