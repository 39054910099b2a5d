// Package fs provides the filesystem adapter backed by go-billy.
package fs

import (
	"errors"
	iofs "io/fs"
	"path/filepath"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.trai.ch/lfs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FS)(nil)

// FS implements ports.FileSystem over a billy.Filesystem.
// Paths are absolute and use the host separator.
type FS struct {
	bfs billy.Filesystem
}

// New wraps an existing billy.Filesystem.
func New(bfs billy.Filesystem) *FS {
	return &FS{bfs: bfs}
}

// NewLocal creates an FS over the host filesystem, rooted at "/".
func NewLocal() *FS {
	return New(osfs.New("/"))
}

// NewMemory creates an empty in-memory FS.
func NewMemory() *FS {
	return New(memfs.New())
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Exists reports whether anything is present at path.
// A path whose parent is a regular file does not exist.
func (f *FS) Exists(path string) (bool, error) {
	_, err := f.bfs.Stat(clean(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, zerr.With(zerr.Wrap(err, "failed to check path"), "path", path)
}

// Stat returns file info for path.
func (f *FS) Stat(path string) (iofs.FileInfo, error) {
	return f.bfs.Stat(clean(path))
}

// ReadDir lists the directory at path, sorted by name.
func (f *FS) ReadDir(path string) ([]iofs.FileInfo, error) {
	return f.bfs.ReadDir(clean(path))
}

// ReadFile returns the content of the file at path.
func (f *FS) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(f.bfs, clean(path))
}

func clean(path string) string {
	return filepath.Clean(path)
}
