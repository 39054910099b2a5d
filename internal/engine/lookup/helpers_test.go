package lookup_test

import (
	iofs "io/fs"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfs/internal/adapters/fs"
	"go.trai.ch/lfs/internal/adapters/logger"
	"go.trai.ch/lfs/internal/adapters/manifest"
	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
)

const base = "/app"

// tree is an in-memory workspace rooted at base. Names ending in a slash
// are created as empty directories.
type tree struct {
	files     *fs.FS
	manifests *manifest.Reader
	log       ports.Logger
}

func newTree(t *testing.T, files map[string]string) *tree {
	t.Helper()

	mem := fs.NewMemory()
	for name, content := range files {
		path := filepath.Join(base, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, mem.Unwrap().MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, util.WriteFile(mem.Unwrap(), path, []byte(content), 0o600))
	}
	require.NoError(t, mem.Unwrap().MkdirAll(base, 0o755))

	return &tree{
		files:     mem,
		manifests: manifest.NewReader(mem),
		log:       logger.Discard(),
	}
}

func (tr *tree) options() domain.Options {
	return domain.Options{BasePath: base}
}

func (tr *tree) remove(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, util.RemoveAll(tr.files.Unwrap(), filepath.Join(base, name)))
}

func (tr *tree) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(tr.files.Unwrap(), filepath.Join(base, name), []byte(content), 0o600))
}

func abs(name string) string {
	return filepath.Join(base, name)
}

// countingFS records every path handed to the wrapped filesystem.
type countingFS struct {
	ports.FileSystem

	mu    sync.Mutex
	paths []string
}

func (c *countingFS) record(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *countingFS) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func (c *countingFS) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = nil
}

func (c *countingFS) Exists(path string) (bool, error) {
	c.record(path)
	return c.FileSystem.Exists(path)
}

func (c *countingFS) Stat(path string) (iofs.FileInfo, error) {
	c.record(path)
	return c.FileSystem.Stat(path)
}

func (c *countingFS) ReadDir(path string) ([]iofs.FileInfo, error) {
	c.record(path)
	return c.FileSystem.ReadDir(path)
}

// lockedFS refuses to list the configured directories.
type lockedFS struct {
	ports.FileSystem

	locked map[string]bool
}

func (l *lockedFS) ReadDir(path string) ([]iofs.FileInfo, error) {
	if l.locked[path] {
		return nil, &iofs.PathError{Op: "readdir", Path: path, Err: iofs.ErrPermission}
	}
	return l.FileSystem.ReadDir(path)
}
