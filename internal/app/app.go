// Package app implements the application layer for lfs.
package app

import (
	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
	"go.trai.ch/lfs/internal/engine/lookup"
	"go.trai.ch/zerr"
)

// App opens workspaces rooted at a base directory.
type App struct {
	fsys      ports.FileSystem
	manifests ports.ManifestReader
	loader    ports.ConfigLoader
	log       ports.Logger
}

// Workspace is a resolver and searcher pair sharing one base directory.
// Workspaces do not share caches.
type Workspace struct {
	Options  domain.Options
	Resolver *lookup.Resolver
	Searcher *lookup.Searcher
}

// New creates a new App instance.
func New(fsys ports.FileSystem, manifests ports.ManifestReader, loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		fsys:      fsys,
		manifests: manifests,
		loader:    loader,
		log:       log,
	}
}

// Open loads the configuration for base, applies overrides and builds a Workspace.
// An empty base means the current working directory.
func (a *App) Open(base string, overrides domain.Options) (*Workspace, error) {
	opts, err := a.loader.Load(base, overrides)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	resolver, err := lookup.NewResolver(a.fsys, a.manifests, a.log, opts)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create resolver")
	}

	searcher, err := lookup.NewSearcher(a.fsys, a.manifests, a.log, opts)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create searcher")
	}

	return &Workspace{
		Options:  opts,
		Resolver: resolver,
		Searcher: searcher,
	}, nil
}

// Resolve resolves each name in order. Missing names yield domain.NotFound.
func (w *Workspace) Resolve(names ...string) []domain.Resolution {
	out := make([]domain.Resolution, 0, len(names))
	for _, name := range names {
		path, ok := w.Resolver.Resolve(name)
		if !ok {
			out = append(out, domain.NotFound)
			continue
		}
		out = append(out, domain.Resolved(path))
	}
	return out
}

// SearchAll returns every path named target in the workspace's dependency tree.
func (w *Workspace) SearchAll(target string, refresh bool) ([]string, error) {
	return w.Searcher.SearchAll(target, refresh)
}

// Roots returns the resolver's ordered search roots.
func (w *Workspace) Roots() domain.SearchRoots {
	return w.Resolver.Roots()
}
