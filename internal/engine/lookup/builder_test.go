package lookup_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/lfs/internal/core/ports/mocks"
	"go.trai.ch/lfs/internal/engine/lookup"
	"go.uber.org/mock/gomock"
)

func TestBuildSearchRoots_Order(t *testing.T) {
	tr := newTree(t, map[string]string{
		"package.json":                                     `{"dependencies": {"pkgB": "^1.0.0", "pkgA": "^2.0.0"}}`,
		"node_modules/pkgA/index.js":                       "",
		"node_modules/pkgA/node_modules/pkgC/index.js":     "",
		"node_modules/pkgB/index.js":                       "",
		"node_modules/pkgD/index.js":                       "",
		"node_modules/.package-lock.json":                  "{}",
		"node_modules/pkgA/node_modules/pkgC/package.json": "{}",
	})

	roots, err := lookup.BuildSearchRoots(tr.files, tr.manifests, tr.log, tr.options())
	require.NoError(t, err)

	assert.Equal(t, domain.SearchRoots{
		base,
		abs("node_modules/pkgB"),
		abs("node_modules/pkgA"),
		abs("node_modules/pkgA/node_modules/pkgC"),
		abs("node_modules/pkgD"),
	}, roots)
}

func TestBuildSearchRoots_DeclaredNotInstalled(t *testing.T) {
	tr := newTree(t, map[string]string{
		"package.json":               `{"dependencies": {"missing": "1.0.0", "pkgA": "1.0.0"}}`,
		"node_modules/pkgA/index.js": "",
	})

	roots, err := lookup.BuildSearchRoots(tr.files, tr.manifests, tr.log, tr.options())
	require.NoError(t, err)

	assert.Equal(t, domain.SearchRoots{base, abs("node_modules/pkgA")}, roots)
}

func TestBuildSearchRoots_NoContainer(t *testing.T) {
	tr := newTree(t, map[string]string{
		"src/index.js": "",
	})

	roots, err := lookup.BuildSearchRoots(tr.files, tr.manifests, tr.log, tr.options())
	require.NoError(t, err)

	assert.Equal(t, domain.SearchRoots{base}, roots)
}

func TestBuildSearchRoots_ManifestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	manifests := mocks.NewMockManifestReader(ctrl)
	manifests.EXPECT().Dependencies(base).Return(nil, errors.New("unexpected token"))

	tr := newTree(t, map[string]string{
		"node_modules/pkgA/index.js": "",
	})

	roots, err := lookup.BuildSearchRoots(tr.files, manifests, tr.log, tr.options())
	require.NoError(t, err)

	assert.Equal(t, domain.SearchRoots{base, abs("node_modules/pkgA")}, roots)
}

func TestBuildSearchRoots_CustomContainer(t *testing.T) {
	tr := newTree(t, map[string]string{
		"package.json":                `{"dependencies": {"pkgA": "1.0.0"}}`,
		"dependencies/pkgA/index.js":  "",
		"node_modules/other/index.js": "",
	})

	opts := tr.options()
	opts.ContainerDir = "dependencies"
	roots, err := lookup.BuildSearchRoots(tr.files, tr.manifests, tr.log, opts)
	require.NoError(t, err)

	assert.Equal(t, domain.SearchRoots{base, abs("dependencies/pkgA")}, roots)
}

func TestBuildSearchRoots_AppliesDefaults(t *testing.T) {
	tr := newTree(t, map[string]string{
		"src/index.js":               "",
		"node_modules/pkgA/index.js": "",
	})

	// Zero options: the container defaults to node_modules, so neither the
	// container itself nor ordinary source directories become roots.
	roots, err := lookup.BuildSearchRoots(tr.files, tr.manifests, tr.log, domain.Options{BasePath: base})
	require.NoError(t, err)

	assert.Equal(t, domain.SearchRoots{base, abs("node_modules/pkgA")}, roots)
	assert.False(t, roots.Contains(abs("node_modules")))
	assert.False(t, roots.Contains(abs("src")))
}

func TestBuildSearchRoots_InvalidOptions(t *testing.T) {
	tr := newTree(t, nil)

	roots, err := lookup.BuildSearchRoots(tr.files, tr.manifests, tr.log, domain.Options{
		BasePath:     base,
		ContainerDir: "../outside",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Nil(t, roots)
}
