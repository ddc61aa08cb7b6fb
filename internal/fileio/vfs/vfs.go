// Package vfs provides the small file system abstraction the file
// loader and writer run on.
//
// The FS interface allows swapping the underlying file system
// implementation, enabling tests with an in-memory file system that can
// also simulate failing writes.
package vfs

import (
	"io"
	"io/fs"
)

// FS is a virtual file system abstraction.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information.
	Stat(path string) (fs.FileInfo, error)

	// Create creates or truncates a file for writing with the given
	// permissions.
	Create(path string, perm fs.FileMode) (File, error)

	// Rename renames (moves) a file, replacing newPath if it exists.
	Rename(oldPath, newPath string) error

	// Remove removes a file.
	Remove(path string) error
}

// File is a file open for writing.
type File interface {
	io.Writer

	// Sync commits the written content to stable storage.
	Sync() error

	// Close closes the file.
	Close() error
}
