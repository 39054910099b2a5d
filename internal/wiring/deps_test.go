package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lfs/internal/app"
	"go.trai.ch/lfs/internal/core/ports"
	_ "go.trai.ch/lfs/internal/wiring"
)

// TestGraftDependencies ensures that the dependency injection graph is valid
// at compile/test time. It checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// graft.AssertDepsValid infers the dependency ID from the package name of
	// the interface used in Dep[T]. Since we use `ports.FileSystem`,
	// `ports.Logger`, etc., it expects a dependency named "ports".
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraftResolvesPorts(t *testing.T) {
	ctx := context.Background()

	fsys, _, err := graft.ExecuteFor[ports.FileSystem](ctx)
	require.NoError(t, err)
	assert.NotNil(t, fsys)

	manifests, _, err := graft.ExecuteFor[ports.ManifestReader](ctx)
	require.NoError(t, err)
	assert.NotNil(t, manifests)

	loader, _, err := graft.ExecuteFor[ports.ConfigLoader](ctx)
	require.NoError(t, err)
	assert.NotNil(t, loader)

	log, _, err := graft.ExecuteFor[ports.Logger](ctx)
	require.NoError(t, err)
	assert.NotNil(t, log)

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	require.NoError(t, err)
	assert.NotNil(t, components.App)
}
