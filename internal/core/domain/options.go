package domain

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultCacheMaxSize is the resolution cache capacity used when none is configured.
	DefaultCacheMaxSize = 10000

	// DefaultContainerDir is the name of the directory holding installed dependencies.
	DefaultContainerDir = "node_modules"

	// DefaultManifestFile is the name of the project descriptor listing dependencies.
	DefaultManifestFile = "package.json"
)

// Options configures a single resolver/searcher pair rooted at one base directory.
type Options struct {
	// BasePath is the directory all relative resolution and searching is rooted in.
	// Defaults to the current working directory.
	BasePath string

	// CacheMaxSize is the number of resolution cache entries kept before the
	// cache is cleared wholesale.
	CacheMaxSize int

	// ContainerDir is the name of the dependency-container subdirectory.
	ContainerDir string
}

// Normalize fills in defaults and makes BasePath absolute and clean.
func (o Options) Normalize() (Options, error) {
	if o.BasePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return o, zerr.Wrap(err, "failed to determine working directory")
		}
		o.BasePath = wd
	}

	abs, err := filepath.Abs(o.BasePath)
	if err != nil {
		return o, zerr.With(zerr.Wrap(err, "failed to make base path absolute"), "base_path", o.BasePath)
	}
	o.BasePath = abs

	if o.CacheMaxSize <= 0 {
		o.CacheMaxSize = DefaultCacheMaxSize
	}
	if o.ContainerDir == "" {
		o.ContainerDir = DefaultContainerDir
	}
	return o, nil
}

// Validate reports options that cannot be defaulted away.
func (o Options) Validate() error {
	if o.CacheMaxSize < 0 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "cache size must not be negative"), "cache_max_size", o.CacheMaxSize)
	}
	if strings.ContainsAny(o.ContainerDir, `/\`) || o.ContainerDir == "." || o.ContainerDir == ".." {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "container dir must be a single path element"), "container_dir", o.ContainerDir)
	}
	return nil
}

// ContainerPath returns the dependency-container directory inside dir.
func (o Options) ContainerPath(dir string) string {
	return filepath.Join(dir, o.ContainerDir)
}
