// Package lookup resolves names against a layered dependency tree.
package lookup

import (
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver resolves single names to the first matching regular file across
// its search roots. Results, including misses, are cached by the name as
// given. Resolver is safe for concurrent use.
type Resolver struct {
	fsys  ports.FileSystem
	log   ports.Logger
	roots domain.SearchRoots

	mu    sync.Mutex
	cache *domain.ResolutionCache
}

// NewResolver normalizes opts and builds the search roots for opts.BasePath.
func NewResolver(fsys ports.FileSystem, manifests ports.ManifestReader, log ports.Logger, opts domain.Options) (*Resolver, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	roots, err := BuildSearchRoots(fsys, manifests, log, opts)
	if err != nil {
		return nil, err
	}
	cache := domain.NewResolutionCache(opts.CacheMaxSize)
	log.Debug("search roots loaded",
		"base", opts.BasePath, "count", len(roots), "digest", roots.Digest(),
		"cache_capacity", cache.Capacity())

	return &Resolver{
		fsys:  fsys,
		log:   log,
		roots: roots,
		cache: cache,
	}, nil
}

// Roots returns a copy of the ordered search roots.
func (r *Resolver) Roots() domain.SearchRoots {
	return r.roots.Clone()
}

// CacheLen returns the number of cached resolutions.
func (r *Resolver) CacheLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

// Resolve returns the absolute path of the first regular file matching name.
//
// A name starting with the path separator is only checked as given. Any
// other name is joined with each search root in order and the first regular
// file wins. Directories never match. Filesystem errors count as a miss for
// that candidate.
func (r *Resolver) Resolve(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res, ok := r.cache.Get(name); ok {
		r.log.Debug("found in cache", "name", name, "found", res.Found)
		return res.Path, res.Found
	}

	res := r.lookup(name)
	r.cache.Put(name, res)
	return res.Path, res.Found
}

func (r *Resolver) lookup(name string) domain.Resolution {
	if isAbsolute(name) {
		path := filepath.Clean(name)
		r.log.Debug("absolute name, checking only the given path", "name", name)
		if r.isFile(path) {
			return domain.Resolved(path)
		}
		return domain.NotFound
	}

	for _, root := range r.roots {
		candidate := filepath.Join(root, name)
		if r.isFile(candidate) {
			r.log.Debug("resolved", "name", name, "path", candidate)
			return domain.Resolved(candidate)
		}
	}

	r.log.Debug("not found in any search root", "name", name, "roots", len(r.roots))
	return domain.NotFound
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.fsys.Stat(path)
	if err != nil {
		r.log.Debug("candidate does not exist", "path", path, "error", err)
		return false
	}
	return info.Mode().IsRegular()
}

func isAbsolute(name string) bool {
	return strings.HasPrefix(name, string(filepath.Separator)) || filepath.IsAbs(name)
}
