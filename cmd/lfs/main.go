// Package main is the entry point for the lfs lookup tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/lfs/cmd/lfs/commands"
	"go.trai.ch/lfs/internal/app"
	"go.trai.ch/lfs/internal/core/domain"
	_ "go.trai.ch/lfs/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*commands.CLI)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	for _, opt := range opts {
		opt(cli)
	}

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Misses are already reported per name.
		if errors.Is(err, domain.ErrNotFound) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
