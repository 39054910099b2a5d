package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfs/internal/core/domain"
)

func TestOptions_NormalizeDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	opts, err := domain.Options{}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, wd, opts.BasePath)
	assert.Equal(t, domain.DefaultCacheMaxSize, opts.CacheMaxSize)
	assert.Equal(t, domain.DefaultContainerDir, opts.ContainerDir)
}

func TestOptions_NormalizeCleansBase(t *testing.T) {
	tmpDir := t.TempDir()

	opts, err := domain.Options{BasePath: tmpDir + "/sub/..", CacheMaxSize: 5, ContainerDir: "deps"}.Normalize()
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(tmpDir), opts.BasePath)
	assert.Equal(t, 5, opts.CacheMaxSize)
	assert.Equal(t, "/x/deps", opts.ContainerPath("/x"))
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.Options
		wantErr bool
	}{
		{name: "defaults", opts: domain.Options{}},
		{name: "custom container", opts: domain.Options{ContainerDir: "dependencies"}},
		{name: "negative cache", opts: domain.Options{CacheMaxSize: -1}, wantErr: true},
		{name: "nested container", opts: domain.Options{ContainerDir: "a/b"}, wantErr: true},
		{name: "dot container", opts: domain.Options{ContainerDir: ".."}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}
