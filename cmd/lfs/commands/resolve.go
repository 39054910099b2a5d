package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Print the first file matching each name across the search roots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.open(cmd)
			if err != nil {
				return err
			}

			var missing []string
			for i, res := range ws.Resolve(args...) {
				if !res.Found {
					missing = append(missing, args[i])
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: not found\n", args[i])
					continue
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			}

			if len(missing) > 0 {
				return zerr.With(zerr.Wrap(domain.ErrNotFound, "unresolved names"), "names", missing)
			}
			return nil
		},
	}
}
