package lookup

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"syscall"

	"go.trai.ch/lfs/internal/core/ports"
)

// walker finds every entry with a given name below a root directory.
// A matching directory is yielded and not descended into.
type walker struct {
	fsys ports.FileSystem
	log  ports.Logger

	// skip names directories that are never entered.
	skip string

	// interrupted is set when some directory below the root could not be read.
	interrupted bool
}

func newWalker(fsys ports.FileSystem, log ports.Logger, skip string) *walker {
	return &walker{fsys: fsys, log: log, skip: skip}
}

// Matches yields, depth-first in name order, every path below root whose base
// name equals target. A root that does not exist yields nothing.
func (w *walker) Matches(root, target string) iter.Seq[string] {
	return func(yield func(string) bool) {
		entries, err := w.fsys.ReadDir(root)
		if err != nil {
			if !isMissing(err) {
				w.fail(root, err)
			}
			return
		}
		w.walk(root, entries, target, yield)
	}
}

func (w *walker) walk(dir string, entries []fs.FileInfo, target string, yield func(string) bool) bool {
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.Name() == target {
			if !yield(path) {
				return false
			}
			continue
		}

		isDir, err := w.isDir(path, entry)
		if err != nil {
			w.fail(path, err)
			continue
		}
		if !isDir || w.shouldSkipDir(entry.Name()) {
			continue
		}

		children, err := w.fsys.ReadDir(path)
		if err != nil {
			w.fail(path, err)
			continue
		}
		if !w.walk(path, children, target, yield) {
			return false
		}
	}
	return true
}

// isDir follows symlinks so linked packages are walked like installed ones.
func (w *walker) isDir(path string, entry fs.FileInfo) (bool, error) {
	if entry.Mode()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := w.fsys.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (w *walker) shouldSkipDir(name string) bool {
	return w.skip != "" && name == w.skip
}

func (w *walker) fail(path string, err error) {
	w.interrupted = true
	w.log.Warn("skipping unreadable directory", "path", path, "error", err)
}

// isMissing reports whether err means there is no directory at the path.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
