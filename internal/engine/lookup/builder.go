package lookup

import (
	"path/filepath"

	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
)

// BuildSearchRoots computes the ordered directories a Resolver searches.
//
// The base directory comes first, then every dependency declared by the base
// manifest that is installed in the container directory, in declaration
// order, then every other installed dependency found by a depth-first walk
// of the nested container directories. Each directory appears once.
// Unreadable manifests and containers are logged and treated as empty.
// Defaults are applied to opts; invalid options yield domain.ErrInvalidConfig.
func BuildSearchRoots(fsys ports.FileSystem, manifests ports.ManifestReader, log ports.Logger, opts domain.Options) (domain.SearchRoots, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	b := &rootBuilder{
		fsys: fsys,
		log:  log,
		opts: opts,
	}

	b.add(opts.BasePath)
	b.addDeclared(manifests)
	b.descend(opts.BasePath)

	return b.roots, nil
}

type rootBuilder struct {
	fsys  ports.FileSystem
	log   ports.Logger
	opts  domain.Options
	roots domain.SearchRoots
}

func (b *rootBuilder) add(dir string) {
	dir = filepath.Clean(dir)
	if b.roots.Contains(dir) {
		return
	}
	b.roots = append(b.roots, dir)
	b.log.Debug("added search root", "path", dir)
}

func (b *rootBuilder) addDeclared(manifests ports.ManifestReader) {
	base := b.opts.BasePath

	deps, err := manifests.Dependencies(base)
	if err != nil {
		b.log.Warn("could not read manifest, continuing without declared dependencies",
			"dir", base, "error", err)
		return
	}

	container := b.opts.ContainerPath(base)
	for _, name := range deps {
		modPath := filepath.Join(container, name)
		info, err := b.fsys.Stat(modPath)
		if err != nil || !info.IsDir() {
			b.log.Info("declared module not installed", "module", name, "path", modPath)
			continue
		}
		b.add(modPath)
	}
}

// descend adds every directory inside dir's container and recurses into it.
func (b *rootBuilder) descend(dir string) {
	container := b.opts.ContainerPath(dir)

	entries, err := b.fsys.ReadDir(container)
	if err != nil {
		if dir == b.opts.BasePath {
			b.log.Info("no dependency container in base directory",
				"base", dir, "container", b.opts.ContainerDir)
			return
		}
		b.log.Debug("no nested dependencies", "path", container, "error", err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(container, entry.Name())
		info, err := b.fsys.Stat(path)
		if err != nil {
			b.log.Debug("could not read module", "path", path, "error", err)
			continue
		}
		if !info.IsDir() {
			continue
		}
		b.add(path)
		b.descend(path)
	}
}
