// Package config provides the workspace configuration loader for lfs.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"path/filepath"

	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// FileReader reads whole files.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Loader implements ports.ConfigLoader using an optional YAML file in the workspace root.
type Loader struct {
	files    FileReader
	log      ports.Logger
	Filename string
}

// NewLoader creates a new Loader reading through files.
func NewLoader(files FileReader, log ports.Logger) *Loader {
	return &Loader{files: files, log: log, Filename: Filename}
}

// Load reads the configuration for the workspace rooted at dir.
// Non-zero fields of overrides take precedence over file values; a missing
// file leaves the defaults in place.
func (l *Loader) Load(dir string, overrides domain.Options) (domain.Options, error) {
	base, err := domain.Options{BasePath: dir}.Normalize()
	if err != nil {
		return domain.Options{}, err
	}
	opts := domain.Options{BasePath: base.BasePath}

	path := filepath.Join(opts.BasePath, l.Filename)
	data, err := l.files.ReadFile(path)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		l.log.Debug("no workspace config file", "path", path)
	case err != nil:
		return domain.Options{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		file, err := Parse(data)
		if err != nil {
			return domain.Options{}, zerr.With(err, "path", path)
		}
		if file.CacheMaxSize != nil {
			opts.CacheMaxSize = *file.CacheMaxSize
		}
		opts.ContainerDir = file.ContainerDir
		l.log.Debug("loaded workspace config", "path", path)
	}

	if overrides.CacheMaxSize != 0 {
		opts.CacheMaxSize = overrides.CacheMaxSize
	}
	if overrides.ContainerDir != "" {
		opts.ContainerDir = overrides.ContainerDir
	}

	if err := opts.Validate(); err != nil {
		return domain.Options{}, err
	}
	return opts.Normalize()
}

// Parse decodes a configuration file. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "failed to parse config file"), "cause", err.Error())
	}
	return file, nil
}
