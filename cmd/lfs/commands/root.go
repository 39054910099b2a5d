// Package commands implements the CLI commands for the lfs lookup tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lfs/internal/app"
	"go.trai.ch/lfs/internal/build"
	"go.trai.ch/lfs/internal/core/domain"
)

// Verbosity toggles debug logging.
type Verbosity interface {
	SetVerbose(verbose bool)
}

// CLI represents the command line interface for lfs.
type CLI struct {
	app     *app.App
	log     Verbosity
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log Verbosity) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lfs",
		Short:         "Resolve and search files across a layered dependency tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Registered before the version flag so that -v belongs to --verbose.
	rootCmd.PersistentFlags().StringP("base", "C", "", "Base directory (defaults to the current directory)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("cache-size", 0, "Resolution cache capacity")
	rootCmd.PersistentFlags().String("container", "", "Name of the dependency container directory")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.log.SetVerbose(verbose)
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newRootsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects standard and error output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func (c *CLI) open(cmd *cobra.Command) (*app.Workspace, error) {
	base, _ := cmd.Flags().GetString("base")
	cacheSize, _ := cmd.Flags().GetInt("cache-size")
	container, _ := cmd.Flags().GetString("container")

	return c.app.Open(base, domain.Options{
		CacheMaxSize: cacheSize,
		ContainerDir: container,
	})
}
