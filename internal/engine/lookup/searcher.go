package lookup

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.TreeSearcher = (*Searcher)(nil)

// Searcher finds every instance of a name in the dependency tree rooted at a
// base directory. Complete results are cached per target until refreshed.
// Searcher is safe for concurrent use; concurrent computations of the same
// target are collapsed into one.
type Searcher struct {
	fsys      ports.FileSystem
	manifests ports.ManifestReader
	log       ports.Logger
	opts      domain.Options

	mu    sync.Mutex
	cache *domain.SearchCache
	group singleflight.Group
}

// NewSearcher creates a Searcher for opts.BasePath.
func NewSearcher(fsys ports.FileSystem, manifests ports.ManifestReader, log ports.Logger, opts domain.Options) (*Searcher, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Searcher{
		fsys:      fsys,
		manifests: manifests,
		log:       log,
		opts:      opts,
		cache:     domain.NewSearchCache(),
	}, nil
}

// SearchAll returns every path named target.
//
// Matches in the base directory come first, then matches directly inside
// each declared dependency in manifest order, then every other match in the
// container tree, shallowest dependency first. A matching directory is not
// searched further. Paths appear once.
//
// It returns domain.ErrInvalidTarget for an empty target and
// domain.ErrManifestUnreadable when the base manifest cannot be read.
// Unreadable directories are skipped; such partial results are returned but
// not cached.
func (s *Searcher) SearchAll(target string, refresh bool) ([]string, error) {
	if target == "" {
		return nil, zerr.Wrap(domain.ErrInvalidTarget, "search target must not be empty")
	}

	if !refresh {
		s.mu.Lock()
		cached, ok := s.cache.Get(target)
		s.mu.Unlock()
		if ok {
			s.log.Debug("search served from cache", "target", target, "count", len(cached))
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(target, func() (any, error) {
		return s.compute(target)
	})
	if err != nil {
		return nil, err
	}
	paths, _ := v.([]string)
	return slices.Clone(paths), nil
}

func (s *Searcher) compute(target string) ([]string, error) {
	run := &search{
		Searcher: s,
		target:   target,
		results:  []string{},
		seen:     make(map[string]struct{}),
	}

	run.localPass()
	if err := run.dependencyPass(); err != nil {
		return nil, err
	}
	run.fullTreePass()

	if run.interrupted {
		s.log.Warn("search incomplete, result not cached", "target", target, "count", len(run.results))
		return run.results, nil
	}

	s.mu.Lock()
	s.cache.Put(target, run.results)
	s.mu.Unlock()

	s.log.Debug("search complete", "target", target, "count", len(run.results))
	return run.results, nil
}

// search holds the state of one SearchAll computation.
type search struct {
	*Searcher

	target      string
	results     []string
	seen        map[string]struct{}
	interrupted bool
}

func (r *search) add(path string) {
	path = filepath.Clean(path)
	if _, ok := r.seen[path]; ok {
		return
	}
	r.seen[path] = struct{}{}
	r.results = append(r.results, path)
}

// localPass collects matches in the base directory outside the container.
func (r *search) localPass() {
	w := newWalker(r.fsys, r.log, r.opts.ContainerDir)
	for path := range w.Matches(r.opts.BasePath, r.target) {
		r.add(path)
	}
	r.interrupted = r.interrupted || w.interrupted
}

// dependencyPass collects the target directly inside each declared dependency.
func (r *search) dependencyPass() error {
	base := r.opts.BasePath

	deps, err := r.manifests.Dependencies(base)
	if err != nil {
		wrapped := zerr.Wrap(domain.ErrManifestUnreadable, "cannot determine declared dependencies")
		wrapped = zerr.With(wrapped, "dir", base)
		return zerr.With(wrapped, "cause", err.Error())
	}

	container := r.opts.ContainerPath(base)
	for _, name := range deps {
		depDir := filepath.Join(container, name)

		info, err := r.fsys.Stat(depDir)
		if err != nil {
			if !isMissing(err) {
				r.skip(depDir, err)
			}
			continue
		}
		if !info.IsDir() {
			continue
		}

		candidate := filepath.Join(depDir, r.target)
		exists, err := r.fsys.Exists(candidate)
		if err != nil {
			r.skip(candidate, err)
			continue
		}
		if exists {
			r.add(candidate)
		}
	}
	return nil
}

// fullTreePass collects every match in the container tree, shallowest first.
func (r *search) fullTreePass() {
	w := newWalker(r.fsys, r.log, "")
	found := slices.Collect(w.Matches(r.opts.ContainerPath(r.opts.BasePath), r.target))
	r.interrupted = r.interrupted || w.interrupted

	marker := string(filepath.Separator) + r.opts.ContainerDir + string(filepath.Separator)
	slices.SortStableFunc(found, func(a, b string) int {
		return nestingDepth(a, marker) - nestingDepth(b, marker)
	})

	for _, path := range found {
		r.add(path)
	}
}

func (r *search) skip(path string, err error) {
	r.interrupted = true
	r.log.Warn("skipping unreadable dependency", "path", path, "error", err)
}

// nestingDepth orders paths by the position of their innermost container.
func nestingDepth(path, marker string) int {
	return strings.LastIndex(path, marker)
}
