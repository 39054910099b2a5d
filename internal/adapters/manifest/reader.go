// Package manifest reads declared dependencies from package.json manifests.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestReader = (*Reader)(nil)

// FileReader reads whole files.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Reader implements ports.ManifestReader for JSON manifests.
//
// The manifest is streamed token by token rather than decoded into a Go map
// so the keys of the dependencies object keep their declaration order.
type Reader struct {
	files    FileReader
	Filename string
}

// NewReader creates a Reader for domain.DefaultManifestFile.
func NewReader(files FileReader) *Reader {
	return &Reader{files: files, Filename: domain.DefaultManifestFile}
}

// Dependencies returns the keys of the "dependencies" object of the manifest
// in dir, in declaration order. A missing manifest has no dependencies.
func (r *Reader) Dependencies(dir string) ([]string, error) {
	path := filepath.Join(dir, r.Filename)

	data, err := r.files.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	names, err := ParseDependencies(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return names, nil
}

// ParseDependencies extracts the ordered dependency names from manifest content.
// Empty content has no dependencies.
func ParseDependencies(data []byte) ([]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, parseError(err, dec)
	}
	if tok != json.Delim('{') {
		return nil, zerr.With(zerr.New("manifest is not an object"), "offset", dec.InputOffset())
	}

	var names []string
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, parseError(err, dec)
		}
		if key != "dependencies" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		if names, err = objectKeys(dec); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, parseError(err, dec)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.New("unexpected content after manifest"), "offset", dec.InputOffset())
	}
	return names, nil
}

// objectKeys reads the next value, which must be an object or null, and
// returns its keys in order.
func objectKeys(dec *json.Decoder) ([]string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, parseError(err, dec)
	}
	if tok == nil {
		return nil, nil
	}
	if tok != json.Delim('{') {
		return nil, zerr.With(zerr.New("manifest dependencies is not an object"), "offset", dec.InputOffset())
	}

	names := []string{}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, parseError(err, dec)
		}
		name, _ := key.(string)
		names = append(names, name)
		if err := skipValue(dec); err != nil {
			return nil, err
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, parseError(err, dec)
	}
	return names, nil
}

func skipValue(dec *json.Decoder) error {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return parseError(err, dec)
	}
	return nil
}

func parseError(err error, dec *json.Decoder) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return zerr.With(zerr.Wrap(err, "failed to parse manifest"), "offset", dec.InputOffset())
}
