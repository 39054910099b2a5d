package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfs/internal/adapters/fs"
)

func TestFS_Memory(t *testing.T) {
	mem := fs.NewMemory()
	bfs := mem.Unwrap()

	require.NoError(t, bfs.MkdirAll("/app/node_modules/pkg", 0o755))
	require.NoError(t, util.WriteFile(bfs, "/app/public/b.txt", []byte("b"), 0o644))
	require.NoError(t, util.WriteFile(bfs, "/app/public/a.txt", []byte("a"), 0o644))

	exists, err := mem.Exists("/app/public/a.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = mem.Exists("/app/public/missing.txt")
	require.NoError(t, err)
	assert.False(t, exists)

	info, err := mem.Stat("/app/node_modules/pkg")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := mem.ReadDir("/app/public")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name())
	assert.Equal(t, "b.txt", entries[1].Name())

	data, err := mem.ReadFile("/app/public/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
}

func TestFS_Local(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "dummy.txt")
	require.NoError(t, os.WriteFile(file, []byte("X"), 0o600))

	local := fs.NewLocal()

	exists, err := local.Exists(file)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = local.Exists(filepath.Join(file, "child"))
	require.NoError(t, err)
	assert.False(t, exists, "a path below a regular file does not exist")

	info, err := local.Stat(file)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	entries, err := local.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "dummy.txt", entries[0].Name())

	data, err := local.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "X", string(data))
}

func TestFS_ReadDirMissing(t *testing.T) {
	_, err := fs.NewMemory().ReadDir("/nowhere")
	require.ErrorIs(t, err, os.ErrNotExist)
}
