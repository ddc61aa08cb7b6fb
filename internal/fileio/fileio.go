// Package fileio loads a file into the edit engine and persists the
// document back to disk.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/ledit/internal/fileio/vfs"
)

// DefaultPerm is used when saving a file that does not exist yet.
const DefaultPerm fs.FileMode = 0o644

// Error reports a failed load or save.
type Error struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Loader receives the initial file content.
type Loader interface {
	LoadInitial(data []byte) error
}

// Load reads path and feeds its bytes to dst. A missing file leaves dst
// with an empty document and reports created == true.
func Load(fsys vfs.FS, path string, dst Loader) (created bool, err error) {
	data, err := fsys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data, created = nil, true
	case err != nil:
		return false, &Error{Op: "load", Path: path, Err: err}
	}

	if err := dst.LoadInitial(data); err != nil {
		return created, &Error{Op: "load", Path: path, Err: err}
	}
	return created, nil
}

// Save writes src to path. The content goes to a temporary file in the
// same directory first, which is then renamed over path. The previous
// file's permissions are kept.
func Save(fsys vfs.FS, path string, src io.WriterTo) (int64, error) {
	perm := DefaultPerm
	info, err := fsys.Stat(path)
	switch {
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return 0, &Error{Op: "save", Path: path, Err: err}
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	n, err := writeFile(fsys, tmp, perm, src)
	if err != nil {
		_ = fsys.Remove(tmp) // best-effort cleanup
		return n, &Error{Op: "save", Path: path, Err: err}
	}
	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return n, &Error{Op: "save", Path: path, Err: err}
	}
	return n, nil
}

func writeFile(fsys vfs.FS, path string, perm fs.FileMode, src io.WriterTo) (int64, error) {
	f, err := fsys.Create(path, perm)
	if err != nil {
		return 0, err
	}
	n, err := src.WriteTo(f)
	if err != nil {
		f.Close()
		return n, err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return n, err
	}
	return n, f.Close()
}
