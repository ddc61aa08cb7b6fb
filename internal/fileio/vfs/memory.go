package vfs

import (
	"bytes"
	"errors"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// errIsDir aligns with the POSIX error OSFS reports.
var errIsDir = syscall.EISDIR

// ErrInjected is returned by operations failed on purpose with FailOn.
var ErrInjected = errors.New("injected failure")

// MemFS implements FS using an in-memory file system.
// It is used for testing; directories are implicit.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]*memFile

	// shortWrites caps how many bytes each Write accepts; 0 means no cap.
	shortWrites int
	failOps     map[string]bool
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:   make(map[string]*memFile),
		failOps: make(map[string]bool),
	}
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if m.failOps["read"] {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: ErrInjected}
	}
	f, ok := m.files[filePath]
	if !ok {
		if m.isDir(filePath) {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: errIsDir}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}

	// Return a copy to prevent modification
	return bytes.Clone(f.content), nil
}

// Stat returns file information.
func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if f, ok := m.files[filePath]; ok {
		return &memInfo{
			name:    path.Base(filePath),
			size:    int64(len(f.content)),
			mode:    f.mode,
			modTime: f.modTime,
		}, nil
	}
	if m.isDir(filePath) {
		return &memInfo{name: path.Base(filePath), mode: fs.ModeDir | 0o755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// Create creates or truncates a file for writing.
func (m *MemFS) Create(filePath string, perm fs.FileMode) (File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = cleanPath(filePath)
	if m.failOps["create"] {
		return nil, &fs.PathError{Op: "create", Path: filePath, Err: ErrInjected}
	}
	if m.isDir(filePath) {
		return nil, &fs.PathError{Op: "create", Path: filePath, Err: errIsDir}
	}
	return &memWriter{fs: m, path: filePath, perm: perm, limit: m.shortWrites}, nil
}

// Rename renames (moves) a file.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldPath = cleanPath(oldPath)
	newPath = cleanPath(newPath)
	if m.failOps["rename"] {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: ErrInjected}
	}
	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// Remove removes a file.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = cleanPath(filePath)
	if _, ok := m.files[filePath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, filePath)
	return nil
}

// AddFile is a convenience method for adding files during setup.
func (m *MemFS) AddFile(filePath string, content string, perm fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[cleanPath(filePath)] = &memFile{
		content: []byte(content),
		mode:    perm,
		modTime: time.Now(),
	}
}

// Files returns all file paths in the file system.
// Useful for testing and debugging.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// SetShortWrites makes every subsequently created file accept at most n
// bytes per Write call without reporting an error. Zero disables it.
func (m *MemFS) SetShortWrites(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shortWrites = n
}

// FailOn makes the named operation ("read", "create", "rename") fail
// with ErrInjected.
func (m *MemFS) FailOn(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOps[op] = true
}

// isDir reports whether some file lives below p. Callers hold the lock.
func (m *MemFS) isDir(p string) bool {
	prefix := p
	if prefix != "/" {
		prefix += "/"
	}
	for f := range m.files {
		if strings.HasPrefix(f, prefix) {
			return true
		}
	}
	return false
}

// cleanPath normalizes a path.
func cleanPath(p string) string {
	p = path.Clean(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// memWriter implements File for MemFS.Create().
type memWriter struct {
	fs    *MemFS
	path  string
	perm  fs.FileMode
	limit int
	buf   bytes.Buffer
}

func (w *memWriter) Write(p []byte) (n int, err error) {
	if w.limit > 0 && len(p) > w.limit {
		p = p[:w.limit]
	}
	return w.buf.Write(p)
}

func (w *memWriter) Sync() error {
	return nil
}

func (w *memWriter) Close() error {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()

	w.fs.files[w.path] = &memFile{
		content: bytes.Clone(w.buf.Bytes()),
		mode:    w.perm,
		modTime: time.Now(),
	}
	return nil
}

// memInfo implements fs.FileInfo for MemFS.
type memInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (i *memInfo) Name() string       { return i.name }
func (i *memInfo) Size() int64        { return i.size }
func (i *memInfo) Mode() fs.FileMode  { return i.mode }
func (i *memInfo) ModTime() time.Time { return i.modTime }
func (i *memInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *memInfo) Sys() any           { return nil }
