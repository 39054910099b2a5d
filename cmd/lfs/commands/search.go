package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lfs/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <target>",
		Short: "Print every path named target in the dependency tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")

			ws, err := c.open(cmd)
			if err != nil {
				return err
			}

			paths, err := ws.SearchAll(args[0], refresh)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: not found\n", args[0])
				return zerr.With(zerr.Wrap(domain.ErrNotFound, "no matches"), "target", args[0])
			}

			for _, path := range paths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("refresh", "r", false, "Recompute instead of using cached results")
	return cmd
}
